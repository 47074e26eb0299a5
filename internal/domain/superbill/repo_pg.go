package superbill

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG creates the PostgreSQL-backed repository.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const sbCols = `id, patient_id, patient_name, patient_dob,
	clinic_name, clinic_address, clinic_phone, clinic_email, provider_name, ein, npi,
	issue_date, status, created_at, updated_at`

func scanSuperbill(row pgx.Row) (*Superbill, error) {
	var s Superbill
	err := row.Scan(&s.ID, &s.PatientID, &s.PatientName, &s.PatientDOB,
		&s.Clinic.Name, &s.Clinic.Address, &s.Clinic.Phone, &s.Clinic.Email,
		&s.Clinic.Provider, &s.Clinic.EIN, &s.Clinic.NPI,
		&s.IssueDate, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	return &s, err
}

func (r *repoPG) Create(ctx context.Context, s *Superbill) error {
	s.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO superbills (id, patient_id, patient_name, patient_dob,
			clinic_name, clinic_address, clinic_phone, clinic_email, provider_name, ein, npi,
			issue_date, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		s.ID, s.PatientID, s.PatientName, s.PatientDOB,
		s.Clinic.Name, s.Clinic.Address, s.Clinic.Phone, s.Clinic.Email,
		s.Clinic.Provider, s.Clinic.EIN, s.Clinic.NPI,
		s.IssueDate, s.Status)
	if err != nil {
		return err
	}
	for i, v := range s.Visits {
		v.SuperbillID = s.ID
		v.Position = i
		if err := r.AddVisit(ctx, v); err != nil {
			return err
		}
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Superbill, error) {
	s, err := scanSuperbill(r.pool.QueryRow(ctx, `SELECT `+sbCols+` FROM superbills WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	s.Visits, err = r.visitsFor(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *repoPG) Update(ctx context.Context, s *Superbill) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE superbills SET patient_id=$2, patient_name=$3, patient_dob=$4,
			clinic_name=$5, clinic_address=$6, clinic_phone=$7, clinic_email=$8,
			provider_name=$9, ein=$10, npi=$11, issue_date=$12, status=$13, updated_at=NOW()
		WHERE id = $1`,
		s.ID, s.PatientID, s.PatientName, s.PatientDOB,
		s.Clinic.Name, s.Clinic.Address, s.Clinic.Phone, s.Clinic.Email,
		s.Clinic.Provider, s.Clinic.EIN, s.Clinic.NPI, s.IssueDate, s.Status)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM superbills WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Superbill, int, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	if filter.PatientID != uuid.Nil {
		args = append(args, filter.PatientID)
		where += ` AND patient_id = $1`
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		if len(args) == 1 {
			where += ` AND status = $1`
		} else {
			where += ` AND status = $2`
		}
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM superbills`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + sbCols + ` FROM superbills` + where + ` ORDER BY issue_date DESC, created_at DESC`
	switch len(args) {
	case 0:
		query += ` LIMIT $1 OFFSET $2`
	case 1:
		query += ` LIMIT $2 OFFSET $3`
	default:
		query += ` LIMIT $3 OFFSET $4`
	}
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Superbill
	for rows.Next() {
		s, err := scanSuperbill(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, s := range items {
		if s.Visits, err = r.visitsFor(ctx, s.ID); err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}

// -- Visits --

const visitCols = `id, superbill_id, visit_date, icd_codes, cpt_codes, fee,
	notes, complaints, status, position, created_at, updated_at`

func scanVisit(row pgx.Row) (*Visit, error) {
	var v Visit
	err := row.Scan(&v.ID, &v.SuperbillID, &v.Date, &v.ICDCodes, &v.CPTCodes, &v.Fee,
		&v.Notes, &v.Complaints, &v.Status, &v.Position, &v.CreatedAt, &v.UpdatedAt)
	return &v, err
}

func (r *repoPG) visitsFor(ctx context.Context, superbillID uuid.UUID) ([]*Visit, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+visitCols+` FROM visits WHERE superbill_id = $1 ORDER BY position, created_at`, superbillID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []*Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, v := range visits {
		if v.Lines, err = r.linesFor(ctx, v.ID); err != nil {
			return nil, err
		}
	}
	return visits, nil
}

func (r *repoPG) linesFor(ctx context.Context, visitID uuid.UUID) ([]ServiceLine, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, visit_id, sequence, code, description, fee
		 FROM visit_service_lines WHERE visit_id = $1 ORDER BY sequence`, visitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []ServiceLine
	for rows.Next() {
		var l ServiceLine
		if err := rows.Scan(&l.ID, &l.VisitID, &l.Sequence, &l.Code, &l.Description, &l.Fee); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *repoPG) AddVisit(ctx context.Context, v *Visit) error {
	v.ID = uuid.New()
	if v.ICDCodes == nil {
		v.ICDCodes = []string{}
	}
	if v.CPTCodes == nil {
		v.CPTCodes = []string{}
	}
	if v.Complaints == nil {
		v.Complaints = []string{}
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO visits (id, superbill_id, visit_date, icd_codes, cpt_codes, fee,
			notes, complaints, status, position)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		v.ID, v.SuperbillID, v.Date, v.ICDCodes, v.CPTCodes, v.Fee,
		v.Notes, v.Complaints, v.Status, v.Position)
	if err != nil {
		return err
	}
	return r.replaceLines(ctx, v)
}

func (r *repoPG) UpdateVisit(ctx context.Context, v *Visit) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE visits SET visit_date=$2, icd_codes=$3, cpt_codes=$4, fee=$5,
			notes=$6, complaints=$7, status=$8, position=$9, updated_at=NOW()
		WHERE id = $1`,
		v.ID, v.Date, v.ICDCodes, v.CPTCodes, v.Fee,
		v.Notes, v.Complaints, v.Status, v.Position)
	if err != nil {
		return err
	}
	return r.replaceLines(ctx, v)
}

// replaceLines rewrites a visit's service lines wholesale. Visits carry a
// handful of lines at most, so a delete-and-insert keeps ordering trivial.
func (r *repoPG) replaceLines(ctx context.Context, v *Visit) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM visit_service_lines WHERE visit_id = $1`, v.ID); err != nil {
		return err
	}
	for i := range v.Lines {
		l := &v.Lines[i]
		l.ID = uuid.New()
		l.VisitID = v.ID
		l.Sequence = i
		if _, err := r.pool.Exec(ctx, `
			INSERT INTO visit_service_lines (id, visit_id, sequence, code, description, fee)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			l.ID, l.VisitID, l.Sequence, l.Code, l.Description, l.Fee); err != nil {
			return err
		}
	}
	return nil
}

func (r *repoPG) DeleteVisit(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM visits WHERE id = $1`, id)
	return err
}

func (r *repoPG) GetVisit(ctx context.Context, id uuid.UUID) (*Visit, error) {
	v, err := scanVisit(r.pool.QueryRow(ctx, `SELECT `+visitCols+` FROM visits WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	v.Lines, err = r.linesFor(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	return v, nil
}
