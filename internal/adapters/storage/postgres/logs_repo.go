package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pills-tracker/internal/domain/adherence"
)

type LogsRepo struct {
	db *sql.DB
}

func NewLogsRepo(db *sql.DB) *LogsRepo {
	return &LogsRepo{db: db}
}

func (r *LogsRepo) Insert(ctx context.Context, l adherence.Log) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medication_logs (
			id, medication_id, timestamp, taken,
			medication_name, medication_dosage, reporter
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		l.ID,
		l.MedicationID,
		l.Timestamp,
		l.Taken,
		l.MedicationName,
		l.MedicationDosage,
		l.Reporter,
	)
	return err
}

func (r *LogsRepo) UpdateTaken(ctx context.Context, id string, taken bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medication_logs SET taken = $2 WHERE id = $1
	`, id, taken)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return adherence.ErrNotFound
	}
	return nil
}

// List devuelve en orden de inserción (inserted_seq): el resolver de estados
// promete "gana el primer match en orden del store" y el sort del historial es
// estable sobre ese orden.
func (r *LogsRepo) List(ctx context.Context, scope adherence.Scope) ([]adherence.Log, error) {
	q := `
		SELECT id, medication_id, timestamp, taken,
		       medication_name, medication_dosage, reporter
		FROM medication_logs
	`
	args := []any{}
	if scope.SelfOnly {
		q += ` WHERE reporter = $1`
		args = append(args, scope.Identity)
	}
	q += ` ORDER BY inserted_seq ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adherence.Log, 0)
	for rows.Next() {
		var l adherence.Log
		if err := rows.Scan(
			&l.ID,
			&l.MedicationID,
			&l.Timestamp,
			&l.Taken,
			&l.MedicationName,
			&l.MedicationDosage,
			&l.Reporter,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LogsRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return adherence.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM medication_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return adherence.ErrNotFound
	}
	return nil
}

func (r *LogsRepo) DeleteByReporter(ctx context.Context, identity string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM medication_logs WHERE reporter = $1`, identity)
	return err
}

func (r *LogsRepo) DeleteByMedication(ctx context.Context, medicationID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM medication_logs WHERE medication_id = $1`, medicationID)
	return err
}
