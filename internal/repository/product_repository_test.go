package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func productColumns() []string {
	return []string{
		"id", "nombre", "descripcion", "precio", "sold_out",
		"categoria_id", "categoria_nombre", "altura", "anchura", "diametro", "fecha_creacion",
	}
}

func TestProductRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("returns the product with its ordered image ids", func(t *testing.T) {
		mock.ExpectQuery(`SELECT p\.id, p\.nombre, .+ FROM productos p`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(productColumns()).
				AddRow(7, "Bowl", "Stoneware bowl", 25.0, false, nil, nil, 8.0, 12.0, 0.0, now))

		mock.ExpectQuery(`SELECT producto_id, imagen_id FROM producto_imagenes`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"producto_id", "imagen_id"}).
				AddRow(7, 31).
				AddRow(7, 12))

		product, err := repo.GetByID(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "Bowl", product.Name)
		assert.Equal(t, []int64{31, 12}, product.ImageIDs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id yields ErrProductNotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT p\.id, p\.nombre, .+ FROM productos p`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(productColumns()))

		_, err := repo.GetByID(ctx, 99)

		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_Filter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	now := time.Now()

	categoryID := int64(3)
	inStock := true
	filter := ProductFilter{
		Name:        "Bowl",
		CategoryID:  &categoryID,
		OnlyInStock: &inStock,
		Order:       "nuevos",
		Page:        1,
		Size:        3,
	}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM productos p WHERE LOWER\(p\.nombre\) LIKE \$1 AND p\.categoria_id = \$2 AND p\.sold_out = FALSE`).
		WithArgs("%bowl%", categoryID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	mock.ExpectQuery(`ORDER BY p\.fecha_creacion DESC, p\.id DESC LIMIT \$3 OFFSET \$4`).
		WithArgs("%bowl%", categoryID, 3, 3).
		WillReturnRows(sqlmock.NewRows(productColumns()).
			AddRow(4, "Bowl small", "", 18.0, false, categoryID, "Bowls", 0.0, 0.0, 0.0, now).
			AddRow(5, "Bowl large", "", 32.0, false, categoryID, "Bowls", 0.0, 0.0, 0.0, now))

	mock.ExpectQuery(`SELECT producto_id, imagen_id FROM producto_imagenes`).
		WithArgs(int64(4), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"producto_id", "imagen_id"}))

	products, total, err := repo.Filter(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, products, 2)
	assert.Equal(t, "Bowl small", products[0].Name)
	assert.Equal(t, []int64{}, products[0].ImageIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_SetSoldOut(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	t.Run("flips the flag", func(t *testing.T) {
		mock.ExpectExec(`UPDATE productos SET sold_out = \$1 WHERE id = \$2`).
			WithArgs(true, int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SetSoldOut(ctx, 4, true))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row yields ErrProductNotFound", func(t *testing.T) {
		mock.ExpectExec(`UPDATE productos SET sold_out = \$1 WHERE id = \$2`).
			WithArgs(true, int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.SetSoldOut(ctx, 99, true), ErrProductNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM productos WHERE id = \$1`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(ctx, 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}
