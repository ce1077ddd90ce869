package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/FedeLo13/ceramic-affair-web/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepositoryImpl struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepositoryImpl {
	return &ProductRepositoryImpl{db: db}
}

const productSelect = `
        SELECT p.id, p.nombre, p.descripcion, p.precio, p.sold_out,
               p.categoria_id, c.nombre AS categoria_nombre,
               p.altura, p.anchura, p.diametro, p.fecha_creacion
        FROM productos p
        LEFT JOIN categorias c ON c.id = p.categoria_id
`

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *models.Product, imageIDs []int64) error {
	query := `
        INSERT INTO productos
        (nombre, descripcion, precio, sold_out, categoria_id, altura, anchura, diametro, fecha_creacion)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `

	product.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.SoldOut,
		product.CategoryID,
		product.Height,
		product.Width,
		product.Diameter,
		product.CreatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("could not create product: %w", err)
	}

	if err := r.replaceImages(ctx, product.ID, imageIDs); err != nil {
		return err
	}
	product.ImageIDs = imageIDs

	return nil
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := r.db.GetContext(ctx, &product, productSelect+` WHERE p.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("could not get product: %w", err)
	}

	if err := r.loadImages(ctx, []*models.Product{&product}); err != nil {
		return nil, err
	}

	return &product, nil
}

// Filter applies the catalog filters and returns one page of products plus
// the total match count.
func (r *ProductRepositoryImpl) Filter(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error) {
	where := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if name := strings.TrimSpace(filter.Name); name != "" {
		args = append(args, "%"+strings.ToLower(name)+"%")
		where = append(where, fmt.Sprintf("LOWER(p.nombre) LIKE $%d", len(args)))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		where = append(where, fmt.Sprintf("p.categoria_id = $%d", len(args)))
	}
	if filter.OnlyInStock != nil && *filter.OnlyInStock {
		where = append(where, "p.sold_out = FALSE")
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	order := " ORDER BY p.fecha_creacion DESC, p.id DESC"
	if filter.Order == "viejos" {
		order = " ORDER BY p.fecha_creacion ASC, p.id ASC"
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM productos p` + whereClause
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("could not count products: %w", err)
	}

	size := filter.Size
	if size <= 0 {
		size = 10
	}
	page := filter.Page
	if page < 0 {
		page = 0
	}

	args = append(args, size, page*size)
	query := fmt.Sprintf("%s%s%s LIMIT $%d OFFSET $%d",
		productSelect, whereClause, order, len(args)-1, len(args))

	var products []models.Product
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, 0, fmt.Errorf("could not filter products: %w", err)
	}

	refs := make([]*models.Product, len(products))
	for i := range products {
		refs[i] = &products[i]
	}
	if err := r.loadImages(ctx, refs); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *ProductRepositoryImpl) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.SelectContext(ctx, &products, productSelect+` ORDER BY p.fecha_creacion DESC`)
	if err != nil {
		return nil, fmt.Errorf("could not get products: %w", err)
	}

	refs := make([]*models.Product, len(products))
	for i := range products {
		refs[i] = &products[i]
	}
	if err := r.loadImages(ctx, refs); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *models.Product, imageIDs []int64) error {
	query := `
        UPDATE productos SET
            nombre = $1,
            descripcion = $2,
            precio = $3,
            sold_out = $4,
            categoria_id = $5,
            altura = $6,
            anchura = $7,
            diametro = $8
        WHERE id = $9
    `

	result, err := r.db.ExecContext(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.SoldOut,
		product.CategoryID,
		product.Height,
		product.Width,
		product.Diameter,
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("could not update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check updated rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	if err := r.replaceImages(ctx, product.ID, imageIDs); err != nil {
		return err
	}
	product.ImageIDs = imageIDs

	return nil
}

func (r *ProductRepositoryImpl) SetSoldOut(ctx context.Context, id int64, soldOut bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE productos SET sold_out = $1 WHERE id = $2`, soldOut, id)
	if err != nil {
		return fmt.Errorf("could not update product stock: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check updated rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// replaceImages rewrites the ordered image link list of a product.
func (r *ProductRepositoryImpl) replaceImages(ctx context.Context, productID int64, imageIDs []int64) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM producto_imagenes WHERE producto_id = $1`, productID); err != nil {
		return fmt.Errorf("could not clear product images: %w", err)
	}

	for position, imageID := range imageIDs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO producto_imagenes (producto_id, imagen_id, posicion) VALUES ($1, $2, $3)`,
			productID, imageID, position)
		if err != nil {
			return fmt.Errorf("could not link image %d: %w", imageID, err)
		}
	}

	return nil
}

type productImageRow struct {
	ProductID int64 `db:"producto_id"`
	ImageID   int64 `db:"imagen_id"`
}

func (r *ProductRepositoryImpl) loadImages(ctx context.Context, products []*models.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]int64, len(products))
	byID := make(map[int64]*models.Product, len(products))
	for i, p := range products {
		ids[i] = p.ID
		byID[p.ID] = p
		p.ImageIDs = []int64{}
	}

	query, args, err := sqlx.In(
		`SELECT producto_id, imagen_id FROM producto_imagenes WHERE producto_id IN (?) ORDER BY producto_id, posicion`,
		ids)
	if err != nil {
		return fmt.Errorf("could not build image query: %w", err)
	}
	query = r.db.Rebind(query)

	var rows []productImageRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return fmt.Errorf("could not load product images: %w", err)
	}

	for _, row := range rows {
		if p, ok := byID[row.ProductID]; ok {
			p.ImageIDs = append(p.ImageIDs, row.ImageID)
		}
	}

	return nil
}
