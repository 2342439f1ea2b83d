package postgres

import (
	"database/sql"
	"time"

	"bloodlink/pkg/domain"

	"github.com/google/uuid"
)

// PgDonor is the database row shape for donors.
type PgDonor struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name      string `db:"name"`
	Phone     string `db:"phone"`
	WhatsApp  string `db:"whatsapp"`
	BloodType string `db:"blood_type"`
	Location  string `db:"location"`

	IsActive bool `db:"is_active" goqu:"skipinsert"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgDonor) ToDomain() *domain.Donor {
	return &domain.Donor{
		ID:        domain.DonorID(p.ID),
		Name:      p.Name,
		Phone:     p.Phone,
		WhatsApp:  p.WhatsApp,
		BloodType: domain.BloodType(p.BloodType),
		Location:  p.Location,
		Active:    p.IsActive,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgDonor) FromDomain(d domain.Donor) {
	*p = PgDonor{
		ID:        uuid.UUID(d.ID),
		Name:      d.Name,
		Phone:     d.Phone,
		WhatsApp:  d.WhatsApp,
		BloodType: string(d.BloodType),
		Location:  d.Location,
		IsActive:  d.Active,
		CreatedAt: d.CreatedAt,
	}
}

func pgDonorsToDomain(rows []PgDonor) []domain.Donor {
	out := make([]domain.Donor, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

// PgHospital is the database row shape for hospitals.
type PgHospital struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name           string `db:"name"`
	Email          string `db:"email"`
	PasswordHash   string `db:"password_hash"`
	Location       string `db:"location"`
	CertificateRef string `db:"certificate_ref"`

	Status     string        `db:"status" goqu:"skipinsert"`
	ApprovedBy uuid.NullUUID `db:"approved_by" goqu:"skipinsert"`
	ApprovedAt sql.NullTime  `db:"approved_at" goqu:"skipinsert"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgHospital) ToDomain() *domain.Hospital {
	h := &domain.Hospital{
		ID:             domain.HospitalID(p.ID),
		Name:           p.Name,
		Email:          p.Email,
		PasswordHash:   p.PasswordHash,
		Location:       p.Location,
		CertificateRef: p.CertificateRef,
		Status:         domain.ApprovalStatus(p.Status),
		CreatedAt:      p.CreatedAt,
	}
	if p.ApprovedBy.Valid {
		h.ApprovedBy = domain.AdminID(p.ApprovedBy.UUID)
	}
	if p.ApprovedAt.Valid {
		h.ApprovedAt = p.ApprovedAt.Time
	}

	return h
}

func (p *PgHospital) FromDomain(h domain.Hospital) {
	*p = PgHospital{
		ID:             uuid.UUID(h.ID),
		Name:           h.Name,
		Email:          h.Email,
		PasswordHash:   h.PasswordHash,
		Location:       h.Location,
		CertificateRef: h.CertificateRef,
		Status:         string(h.Status),
		ApprovedBy: uuid.NullUUID{
			UUID:  uuid.UUID(h.ApprovedBy),
			Valid: uuid.UUID(h.ApprovedBy) != uuid.Nil,
		},
		ApprovedAt: sql.NullTime{
			Time:  h.ApprovedAt,
			Valid: !h.ApprovedAt.IsZero(),
		},
		CreatedAt: h.CreatedAt,
	}
}

func pgHospitalsToDomain(rows []PgHospital) []domain.Hospital {
	out := make([]domain.Hospital, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

// PgAdmin is the database row shape for admin accounts.
type PgAdmin struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`

	IsActive bool `db:"is_active" goqu:"skipinsert"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgAdmin) ToDomain() *domain.Admin {
	return &domain.Admin{
		ID:           domain.AdminID(p.ID),
		Name:         p.Name,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		Active:       p.IsActive,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgAdmin) FromDomain(a domain.Admin) {
	*p = PgAdmin{
		ID:           uuid.UUID(a.ID),
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		IsActive:     a.Active,
		CreatedAt:    a.CreatedAt,
	}
}

// PgBloodRequest is the database row shape for blood requests.
type PgBloodRequest struct {
	ID         uuid.UUID `db:"id" goqu:"skipinsert"`
	HospitalID uuid.UUID `db:"hospital_id"`

	BloodType string         `db:"blood_type"`
	Urgency   string         `db:"urgency"`
	Quantity  int            `db:"quantity"`
	Notes     sql.NullString `db:"notes"`

	Status string `db:"status" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgBloodRequest) ToDomain() *domain.BloodRequest {
	return &domain.BloodRequest{
		ID:         domain.RequestID(p.ID),
		HospitalID: domain.HospitalID(p.HospitalID),
		BloodType:  domain.BloodType(p.BloodType),
		Urgency:    domain.Urgency(p.Urgency),
		Quantity:   p.Quantity,
		Notes:      p.Notes.String,
		Status:     domain.RequestStatus(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
	}
}

func (p *PgBloodRequest) FromDomain(r domain.BloodRequest) {
	*p = PgBloodRequest{
		ID:         uuid.UUID(r.ID),
		HospitalID: uuid.UUID(r.HospitalID),
		BloodType:  string(r.BloodType),
		Urgency:    string(r.Urgency),
		Quantity:   r.Quantity,
		Notes: sql.NullString{
			String: r.Notes,
			Valid:  r.Notes != "",
		},
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  r.UpdatedAt,
			Valid: !r.UpdatedAt.IsZero(),
		},
	}
}

func pgRequestsToDomain(rows []PgBloodRequest) []domain.BloodRequest {
	out := make([]domain.BloodRequest, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
