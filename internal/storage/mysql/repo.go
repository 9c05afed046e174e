package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"property_booking/internal/domain"
)

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertProperty(ctx context.Context, position int, p domain.Property) error {
	cats := p.Category
	if cats == nil {
		cats = []string{}
	}
	catJSON, err := json.Marshal(cats)
	if err != nil {
		return fmt.Errorf("marshal category: %w", err)
	}
	_, err = r.db.ExecContext(ctx, upsertPropertySQL,
		p.ID,
		position,
		p.Name,
		valStr(p.Address.State),
		valStr(p.Address.City),
		valStr(p.Address.Country),
		p.Rating,
		string(catJSON),
		p.Price,
		valStr(p.Offers.Bed),
		valStr(p.Offers.Shower),
		valStr(p.Offers.Occupants),
		valStr(p.Image),
		valStr(p.Discount),
	)
	return err
}

func (r *Repo) UpsertReviews(ctx context.Context, rs []domain.Review) error {
	if len(rs) == 0 {
		return nil
	}
	values := make([]string, 0, len(rs))
	args := make([]any, 0, len(rs)*5)
	for _, rv := range rs {
		values = append(values, "(?,?,?,?,?)")
		args = append(args, rv.ID, rv.Comment, rv.Rating, rv.Author, rv.Date)
	}
	sqlStr := insertReviewsPrefix + strings.Join(values, ",") + insertReviewsOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *Repo) All(ctx context.Context) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, listPropertiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) Get(ctx context.Context, id string) (domain.Property, error) {
	p, err := scanProperty(r.db.QueryRowContext(ctx, getPropertySQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Property{}, domain.ErrNotFound
	}
	return p, err
}

func (r *Repo) Reviews(ctx context.Context) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.Comment, &rv.Rating, &rv.Author, &rv.Date); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface{ Scan(dest ...any) error }

func scanProperty(row scanner) (domain.Property, error) {
	var p domain.Property
	var state, city, country sql.NullString
	var bed, shower, occupants, image, discount sql.NullString
	var catJSON []byte

	if err := row.Scan(
		&p.ID,
		&p.Name,
		&state, &city, &country,
		&p.Rating,
		&catJSON,
		&p.Price,
		&bed, &shower, &occupants,
		&image, &discount,
	); err != nil {
		return domain.Property{}, err
	}

	p.Address = domain.Address{State: state.String, City: city.String, Country: country.String}
	p.Offers = domain.Offers{Bed: bed.String, Shower: shower.String, Occupants: occupants.String}
	p.Image = image.String
	p.Discount = discount.String
	if err := json.Unmarshal(catJSON, &p.Category); err != nil {
		return domain.Property{}, fmt.Errorf("decode category for %s: %w", p.ID, err)
	}
	if p.Category == nil {
		p.Category = []string{}
	}
	return p, nil
}
