// Package admin holds the admin-managed product overlay and admin auth.
//
// Admin products live in their own table and never mutate the static
// catalog seed:
//
//	CREATE TABLE admin_products (
//	    id             SERIAL PRIMARY KEY,
//	    name           TEXT NOT NULL,
//	    description    TEXT NOT NULL DEFAULT '',
//	    brand          TEXT NOT NULL DEFAULT '',
//	    price          DOUBLE PRECISION NOT NULL,
//	    original_price DOUBLE PRECISION NOT NULL DEFAULT 0,
//	    image          TEXT NOT NULL DEFAULT '',
//	    rating         DOUBLE PRECISION NOT NULL DEFAULT 0,
//	    review_count   INT NOT NULL DEFAULT 0,
//	    categories     TEXT[] NOT NULL DEFAULT '{}',
//	    stock          INT NOT NULL DEFAULT 0,
//	    is_new         BOOLEAN NOT NULL DEFAULT false,
//	    in_stock       BOOLEAN NOT NULL DEFAULT true,
//	    is_on_sale     BOOLEAN NOT NULL DEFAULT false,
//	    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//
// To keep overlay IDs clear of the seed range, start the sequence high:
// SELECT setval('admin_products_id_seq', 1000);
package admin

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/malidadi/storefront/internal/catalog"
)

type Repo struct{ DB *pgxpool.Pool }

const productCols = `id, name, description, brand, price, original_price, image,
                     rating, review_count, categories, stock, is_new, in_stock, is_on_sale`

func scanProduct(row pgx.Row) (catalog.Product, error) {
	var p catalog.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Brand, &p.Price, &p.OriginalPrice,
		&p.Image, &p.Rating, &p.ReviewCount, &p.Categories, &p.Stock, &p.IsNew, &p.InStock, &p.IsOnSale)
	return p, err
}

func (r *Repo) List(ctx context.Context) ([]catalog.Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+productCols+` FROM admin_products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int) (catalog.Product, error) {
	p, err := scanProduct(r.DB.QueryRow(ctx, `SELECT `+productCols+` FROM admin_products WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return p, err
}

func (r *Repo) Create(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO admin_products(name, description, brand, price, original_price, image,
		                           rating, review_count, categories, stock, is_new, in_stock, is_on_sale)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING id`,
		p.Name, p.Description, p.Brand, p.Price, p.OriginalPrice, p.Image,
		p.Rating, p.ReviewCount, p.Categories, p.Stock, p.IsNew, p.InStock, p.IsOnSale,
	).Scan(&p.ID)
	return p, err
}

func (r *Repo) Update(ctx context.Context, p catalog.Product) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE admin_products
		SET name=$2, description=$3, brand=$4, price=$5, original_price=$6, image=$7,
		    rating=$8, review_count=$9, categories=$10, stock=$11, is_new=$12,
		    in_stock=$13, is_on_sale=$14, updated_at=now()
		WHERE id=$1`,
		p.ID, p.Name, p.Description, p.Brand, p.Price, p.OriginalPrice, p.Image,
		p.Rating, p.ReviewCount, p.Categories, p.Stock, p.IsNew, p.InStock, p.IsOnSale)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM admin_products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}
