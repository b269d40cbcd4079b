package certificates

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"youedu/backend/models"
	"youedu/backend/store"
)

const tableCertificates = "certificates"

const distinctionThreshold = 90

var ErrCertificateNotFound = errors.New("certificate not found")

type Service struct {
	store store.RowStore
}

func NewService(st store.RowStore) *Service {
	return &Service{store: st}
}

// verificationCode derives a short public code from the issuance facts.
func verificationCode(studentEmail, trailID string, issuedAt time.Time) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%d", studentEmail, trailID, issuedAt.UnixNano())))
	return "YE-" + base64.RawURLEncoding.EncodeToString(sum[:])[:12]
}

// Generate issues a certificate. Callers must have checked eligibility first.
// A final score of 90 or above earns a distinction.
func (s *Service) Generate(studentName, studentEmail, trailID, trailTitle, trailDescription string, finalScore int) (*models.Certificate, error) {
	issuedAt := time.Now().UTC()

	status := models.CertificateStatusPassed
	if finalScore >= distinctionThreshold {
		status = models.CertificateStatusDistinction
	}

	row, err := s.store.CreateRecord(tableCertificates, store.Row{
		"verification_code": verificationCode(studentEmail, trailID, issuedAt),
		"student_name":      studentName,
		"student_email":     studentEmail,
		"trail_id":          trailID,
		"trail_title":       trailTitle,
		"trail_description": trailDescription,
		"final_score":       finalScore,
		"status":            status,
		"issued_at":         issuedAt,
	})
	if err != nil {
		return nil, err
	}

	var cert models.Certificate
	if err := store.Decode(row, &cert); err != nil {
		return nil, err
	}
	return &cert, nil
}

func (s *Service) GetByID(id string) (*models.Certificate, error) {
	row, err := s.store.GetRecordByID(tableCertificates, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, ErrCertificateNotFound
	}
	if err != nil {
		return nil, err
	}
	var cert models.Certificate
	if err := store.Decode(row, &cert); err != nil {
		return nil, err
	}
	return &cert, nil
}

// Verify resolves a public verification code. Unknown codes produce an
// invalid verification, not an error.
func (s *Service) Verify(code string) (*models.CertificateVerification, error) {
	rows, err := s.store.GetAllRecords(tableCertificates, store.Filters{"verification_code": code})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &models.CertificateVerification{
			Valid:            false,
			VerificationCode: code,
			Message:          "Certificado não encontrado",
		}, nil
	}

	var cert models.Certificate
	if err := store.Decode(rows[0], &cert); err != nil {
		return nil, err
	}
	return &models.CertificateVerification{
		Valid:            true,
		VerificationCode: cert.VerificationCode,
		StudentName:      cert.StudentName,
		TrailTitle:       cert.TrailTitle,
		FinalScore:       cert.FinalScore,
		Status:           cert.Status,
		IssuedAt:         &cert.IssuedAt,
		Message:          "Certificado válido",
	}, nil
}

// ListByEmail returns every certificate issued to a student.
func (s *Service) ListByEmail(email string) ([]models.Certificate, error) {
	rows, err := s.store.GetAllRecords(tableCertificates, store.Filters{"student_email": email})
	if err != nil {
		return nil, err
	}
	out := make([]models.Certificate, 0, len(rows))
	for _, row := range rows {
		var cert models.Certificate
		if err := store.Decode(row, &cert); err != nil {
			return nil, err
		}
		out = append(out, cert)
	}
	return out, nil
}
