package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/worksheet/internal/printprofile"
	"github.com/abhisek/worksheet/internal/variantplan"
	"github.com/abhisek/worksheet/internal/work"
)

const (
	tableWorks    = "works"
	tableVariants = "variants"
)

var workColumns = []string{"id", "title", "topic_id", "locale", "type", "template_id", "profile", "created_at", "updated_at"}

// WorkSummary is a work without its variants.
type WorkSummary struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	TopicID      string                `json:"topicId"`
	Type         printprofile.WorkType `json:"type"`
	Layout       printprofile.Layout   `json:"layout"`
	VariantCount int                   `json:"variantCount"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// ListOpts filters and limits ListWorks.
type ListOpts struct {
	TopicID string
	Limit   int // max results (0 = unlimited)
}

// SaveWork inserts or replaces a work and all of its variants.
func (s *Store) SaveWork(ctx context.Context, w *work.Work) error {
	profile, err := json.Marshal(w.Profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query, args := builder().Insert(tableWorks).
		Columns(workColumns...).
		Values(w.ID, w.Title, w.TopicID, w.Locale, string(w.Type), w.TemplateID, string(profile),
			w.CreatedAt.UnixNano(), w.UpdatedAt.UnixNano()).
		OnConflict(entsql.ConflictColumns("id"), entsql.ResolveWithNewValues()).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save work %s: %w", w.ID, err)
	}

	query, args = builder().Delete(tableVariants).Where(entsql.EQ("work_id", w.ID)).Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear variants of %s: %w", w.ID, err)
	}

	if len(w.Variants) > 0 {
		ins := builder().Insert(tableVariants).Columns("id", "work_id", "variant_no", "title", "seed", "idx", "tasks")
		for _, v := range w.Variants {
			tasks, err := json.Marshal(v.Tasks)
			if err != nil {
				return fmt.Errorf("encode variant %s: %w", v.ID, err)
			}
			ins.Values(v.ID, w.ID, v.No, v.Title, v.Seed, v.Index, string(tasks))
		}
		query, args = ins.Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("save variants of %s: %w", w.ID, err)
		}
	}

	return tx.Commit()
}

// GetWork loads a work with its variants.
func (s *Store) GetWork(ctx context.Context, id string) (*work.Work, error) {
	query, args := builder().Select(workColumns...).
		From(entsql.Table(tableWorks)).
		Where(entsql.EQ("id", id)).
		Query()

	w, err := scanWork(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("work %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	query, args = builder().Select("id", "variant_no", "title", "seed", "idx", "tasks").
		From(entsql.Table(tableVariants)).
		Where(entsql.EQ("work_id", id)).
		OrderBy("variant_no").
		Query()
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			v     work.Variant
			tasks string
		)
		if err := rows.Scan(&v.ID, &v.No, &v.Title, &v.Seed, &v.Index, &tasks); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(tasks), &v.Tasks); err != nil {
			return nil, fmt.Errorf("decode variant %s: %w", v.ID, err)
		}
		if v.Tasks == nil {
			v.Tasks = []variantplan.VariantTask{}
		}
		w.Variants = append(w.Variants, v)
	}
	return w, rows.Err()
}

// ListWorks returns works newest first.
func (s *Store) ListWorks(ctx context.Context, opts ListOpts) ([]WorkSummary, error) {
	count := entsql.Select(entsql.Count("*")).
		From(entsql.Table(tableVariants)).
		Where(entsql.ColumnsEQ(entsql.Table(tableVariants).C("work_id"), entsql.Table(tableWorks).C("id")))

	sel := builder().Select(workColumns...).
		AppendSelectExprAs(count, "variant_count").
		From(entsql.Table(tableWorks)).
		OrderBy(entsql.Desc("created_at"), "id")
	if opts.TopicID != "" {
		sel.Where(entsql.EQ("topic_id", opts.TopicID))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WorkSummary
	for rows.Next() {
		var (
			r        workRow
			variants int
		)
		if err := rows.Scan(append(r.dest(), &variants)...); err != nil {
			return nil, err
		}
		w := r.work()
		out = append(out, WorkSummary{
			ID:           w.ID,
			Title:        w.Title,
			TopicID:      w.TopicID,
			Type:         w.Type,
			Layout:       w.Profile.Layout,
			VariantCount: variants,
			CreatedAt:    w.CreatedAt,
		})
	}
	return out, rows.Err()
}

// DeleteWork removes a work and its variants.
func (s *Store) DeleteWork(ctx context.Context, id string) error {
	query, args := builder().Delete(tableWorks).Where(entsql.EQ("id", id)).Query()
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("work %q: %w", id, ErrNotFound)
	}
	return nil
}

type workRow struct {
	id, title, topicID, locale, typ, templateID, profile string
	createdAt, updatedAt                                 int64
}

func (r *workRow) dest() []any {
	return []any{&r.id, &r.title, &r.topicID, &r.locale, &r.typ, &r.templateID, &r.profile, &r.createdAt, &r.updatedAt}
}

// work decodes a row. The stored profile goes through normalization so
// rows written by older versions still load.
func (r *workRow) work() *work.Work {
	return &work.Work{
		ID:         r.id,
		Title:      r.title,
		TopicID:    r.topicID,
		Locale:     r.locale,
		Type:       printprofile.ParseWorkType(r.typ),
		TemplateID: r.templateID,
		Profile:    printprofile.NormalizeProfile([]byte(r.profile)),
		CreatedAt:  time.Unix(0, r.createdAt).UTC(),
		UpdatedAt:  time.Unix(0, r.updatedAt).UTC(),
	}
}

func scanWork(row *sql.Row) (*work.Work, error) {
	var r workRow
	if err := row.Scan(r.dest()...); err != nil {
		return nil, err
	}
	return r.work(), nil
}
