// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package stub

import (
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/northstarhouse/strategyhub/migrations"
	"github.com/northstarhouse/strategyhub/models"
)

// Store persists the stub's sheet data in sqlite. Row bodies are stored as
// JSON payloads so the schema survives model changes; only the columns the
// stub filters or orders by are broken out.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "sheetstub.db"
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err = migrations.Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// newStoreWithDB is used by tests to inject a mocked database.
func newStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ── todos ───────────────────────────────────────────────────────────────────

func (s *Store) ListTodos() ([]models.Todo, error) {
	query, args, err := sq.Select("id", "text", "done", "created_at", "completed_at").
		From("todos").
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build todos query: %w", err)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var todo models.Todo
		var done int
		if err = rows.Scan(&todo.ID, &todo.Text, &done, &todo.CreatedAt, &todo.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todo.Done = done != 0
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

func (s *Store) SaveTodo(todo models.Todo) error {
	done := 0
	if todo.Done {
		done = 1
	}
	query, args, err := sq.Insert("todos").
		Columns("id", "text", "done", "created_at", "completed_at").
		Values(todo.ID, todo.Text, done, todo.CreatedAt, todo.CompletedAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET text=excluded.text, done=excluded.done, completed_at=excluded.completed_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build todo upsert: %w", err)
	}
	_, err = s.db.Exec(query, args...)
	return err
}

func (s *Store) DeleteTodo(id string) error {
	query, args, err := sq.Delete("todos").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build todo delete: %w", err)
	}
	_, err = s.db.Exec(query, args...)
	return err
}

// ── payload tables ──────────────────────────────────────────────────────────

func (s *Store) listPayloads(table, orderBy string, decode func([]byte) error) error {
	query, args, err := sq.Select("payload").From(table).OrderBy(orderBy).ToSql()
	if err != nil {
		return fmt.Errorf("build %s query: %w", table, err)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var payload []byte
		if err = rows.Scan(&payload); err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		if err = decode(payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", table, err)
		}
	}
	return rows.Err()
}

func (s *Store) ListEvents() ([]models.Event, error) {
	events := []models.Event{}
	err := s.listPayloads("events", "id", func(payload []byte) error {
		var event models.Event
		if err := json.Unmarshal(payload, &event); err != nil {
			return err
		}
		events = append(events, event)
		return nil
	})
	return events, err
}

func (s *Store) SaveEvent(event models.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	query, args, err := sq.Insert("events").
		Columns("id", "payload").
		Values(event.ID, string(payload)).
		Suffix("ON CONFLICT(id) DO UPDATE SET payload=excluded.payload").
		ToSql()
	if err != nil {
		return fmt.Errorf("build event upsert: %w", err)
	}
	_, err = s.db.Exec(query, args...)
	return err
}

func (s *Store) DeleteEvent(id string) error {
	query, args, err := sq.Delete("events").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build event delete: %w", err)
	}
	_, err = s.db.Exec(query, args...)
	return err
}

// ── quarterly ───────────────────────────────────────────────────────────────

func (s *Store) ListQuarterlyUpdates() ([]models.QuarterlyUpdate, error) {
	query, args, err := sq.Select("focus_area", "quarter", "submitted_date", "payload").
		From("quarterly_updates").
		OrderBy("submitted_date", "focus_area").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build quarterly query: %w", err)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quarterly updates: %w", err)
	}
	defer rows.Close()

	updates := []models.QuarterlyUpdate{}
	for rows.Next() {
		var update models.QuarterlyUpdate
		var payload []byte
		if err = rows.Scan(&update.FocusArea, &update.Quarter, &update.SubmittedDate, &payload); err != nil {
			return nil, fmt.Errorf("scan quarterly update: %w", err)
		}
		if err = json.Unmarshal(payload, &update.Payload); err != nil {
			return nil, fmt.Errorf("decode quarterly payload: %w", err)
		}
		updates = append(updates, update)
	}
	return updates, rows.Err()
}

// SaveQuarterlyUpdate upserts a report by focus area and quarter. A
// resubmit replaces the report but keeps an already attached review.
func (s *Store) SaveQuarterlyUpdate(form models.QuarterlyForm) error {
	existing, err := s.findQuarterly(form.FocusArea, form.Quarter)
	if err != nil {
		return err
	}

	payload := models.QuarterlyPayload{QuarterlyForm: form}
	if existing != nil {
		payload.Review = existing.Review
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode quarterly payload: %w", err)
	}

	query, args, err := sq.Insert("quarterly_updates").
		Columns("focus_area", "quarter", "submitted_date", "payload").
		Values(form.FocusArea, form.Quarter, form.SubmittedDate, string(raw)).
		Suffix("ON CONFLICT(focus_area, quarter) DO UPDATE SET submitted_date=excluded.submitted_date, payload=excluded.payload").
		ToSql()
	if err != nil {
		return fmt.Errorf("build quarterly upsert: %w", err)
	}
	_, err = s.db.Exec(query, args...)
	return err
}

// SaveReview attaches a review to a stored report. Reviews without a
// matching report are rejected.
func (s *Store) SaveReview(review models.ReviewUpdate) error {
	existing, err := s.findQuarterly(review.FocusArea, review.Quarter)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("no report for %s %s", review.FocusArea, review.Quarter)
	}

	existing.Review = &review
	raw, err := json.Marshal(existing)
	if err != nil {
		return fmt.Errorf("encode quarterly payload: %w", err)
	}

	query, args, err := sq.Update("quarterly_updates").
		Set("payload", string(raw)).
		Where(sq.Eq{"focus_area": review.FocusArea, "quarter": review.Quarter}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build review update: %w", err)
	}
	_, err = s.db.Exec(query, args...)
	return err
}

func (s *Store) findQuarterly(focusArea, quarter string) (*models.QuarterlyPayload, error) {
	query, args, err := sq.Select("payload").
		From("quarterly_updates").
		Where(sq.Eq{"focus_area": focusArea, "quarter": quarter}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build quarterly lookup: %w", err)
	}

	var raw []byte
	err = s.db.QueryRow(query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find quarterly update: %w", err)
	}

	var payload models.QuarterlyPayload
	if err = json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode quarterly payload: %w", err)
	}
	return &payload, nil
}

// ── monthly planning tables ─────────────────────────────────────────────────

func (s *Store) ListNewsletter() ([]models.NewsletterEntry, error) {
	entries := []models.NewsletterEntry{}
	err := s.listPayloads("newsletter", "month", func(payload []byte) error {
		var entry models.NewsletterEntry
		if err := json.Unmarshal(payload, &entry); err != nil {
			return err
		}
		entries = append(entries, entry)
		return nil
	})
	return entries, err
}

func (s *Store) UpsertNewsletter(entry models.NewsletterEntry) error {
	return s.upsertMonthly("newsletter", entry.Month, entry)
}

func (s *Store) ListPosting() ([]models.PostingRow, error) {
	rowsOut := []models.PostingRow{}
	err := s.listPayloads("posting", "month", func(payload []byte) error {
		var row models.PostingRow
		if err := json.Unmarshal(payload, &row); err != nil {
			return err
		}
		rowsOut = append(rowsOut, row)
		return nil
	})
	return rowsOut, err
}

func (s *Store) UpsertPosting(row models.PostingRow) error {
	return s.upsertMonthly("posting", row.Month, row)
}

func (s *Store) ListPressReleases() ([]models.PressReleaseEntry, error) {
	entries := []models.PressReleaseEntry{}
	err := s.listPayloads("press_releases", "month", func(payload []byte) error {
		var entry models.PressReleaseEntry
		if err := json.Unmarshal(payload, &entry); err != nil {
			return err
		}
		entries = append(entries, entry)
		return nil
	})
	return entries, err
}

func (s *Store) UpsertPressRelease(entry models.PressReleaseEntry) error {
	return s.upsertMonthly("press_releases", entry.Month, entry)
}

func (s *Store) upsertMonthly(table string, month int, value any) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%s: month %d out of range", table, month)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", table, err)
	}
	query, args, err := sq.Insert(table).
		Columns("month", "payload").
		Values(month, string(payload)).
		Suffix("ON CONFLICT(month) DO UPDATE SET payload=excluded.payload").
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s upsert: %w", table, err)
	}
	_, err = s.db.Exec(query, args...)
	return err
}

// ── bookings ────────────────────────────────────────────────────────────────

func (s *Store) ListBookings() ([]models.Booking, int, error) {
	query, args, err := sq.Select("row_index", "payload").
		From("bookings").
		OrderBy("row_index").
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build bookings query: %w", err)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var booking models.Booking
		var payload []byte
		if err = rows.Scan(&booking.RowIndex, &payload); err != nil {
			return nil, 0, fmt.Errorf("scan booking: %w", err)
		}
		rowIndex := booking.RowIndex
		if err = json.Unmarshal(payload, &booking); err != nil {
			return nil, 0, fmt.Errorf("decode booking payload: %w", err)
		}
		booking.RowIndex = rowIndex
		bookings = append(bookings, booking)
	}
	return bookings, len(bookings), rows.Err()
}

// UpdateBooking replaces a row's payload; a zero row index appends a new
// row, which is how the real sheet behaves when a booking form comes in.
func (s *Store) UpdateBooking(booking models.Booking) error {
	payload, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("encode booking payload: %w", err)
	}

	if booking.RowIndex == 0 {
		query, args, buildErr := sq.Insert("bookings").
			Columns("payload").
			Values(string(payload)).
			ToSql()
		if buildErr != nil {
			return fmt.Errorf("build booking insert: %w", buildErr)
		}
		_, err = s.db.Exec(query, args...)
		return err
	}

	query, args, err := sq.Update("bookings").
		Set("payload", string(payload)).
		Where(sq.Eq{"row_index": booking.RowIndex}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build booking update: %w", err)
	}
	result, err := s.db.Exec(query, args...)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return fmt.Errorf("no booking at row %d", booking.RowIndex)
	}
	return nil
}
