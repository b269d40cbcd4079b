package models

import "time"

const (
	CertificateStatusPassed      = "passed"
	CertificateStatusDistinction = "distinction" // final score >= 90
)

type Certificate struct {
	ID               string    `json:"id"`
	VerificationCode string    `json:"verification_code"`
	StudentName      string    `json:"student_name"`
	TrailTitle       string    `json:"trail_title"`
	TrailDescription string    `json:"trail_description,omitempty"`
	FinalScore       int       `json:"final_score"`
	Status           string    `json:"status"`
	IssuedAt         time.Time `json:"issued_at"`
	PDFURL           string    `json:"pdf_url,omitempty"`
}

type CertificateVerification struct {
	Valid            bool       `json:"valid"`
	VerificationCode string     `json:"verification_code"`
	StudentName      string     `json:"student_name,omitempty"`
	TrailTitle       string     `json:"trail_title,omitempty"`
	FinalScore       int        `json:"final_score,omitempty"`
	Status           string     `json:"status,omitempty"`
	IssuedAt         *time.Time `json:"issued_at,omitempty"`
	Message          string     `json:"message"`
}
