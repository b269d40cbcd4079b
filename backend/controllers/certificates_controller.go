package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"youedu/backend/services/certificates"
	"youedu/backend/services/progress"
	"youedu/backend/services/students"
	"youedu/backend/services/trails"
	"youedu/backend/utils"
)

type CertificatesController struct {
	Certificates *certificates.Service
	Students     *students.Service
	Trails       *trails.Service
	Progress     *progress.Service
}

func NewCertificatesController(certs *certificates.Service, studs *students.Service, tr *trails.Service, prog *progress.Service) *CertificatesController {
	return &CertificatesController{
		Certificates: certs,
		Students:     studs,
		Trails:       tr,
		Progress:     prog,
	}
}

// Generate issues a certificate after re-checking eligibility: all videos
// completed and the final assessment passed.
func (cc *CertificatesController) Generate(c *fiber.Ctx) error {
	var body struct {
		TrailID      string `json:"trail_id"`
		StudentEmail string `json:"student_email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.TrailID == "" || body.StudentEmail == "" {
		return utils.ValidationError(c, map[string]string{
			"trail_id":      "trail_id is required",
			"student_email": "student_email is required",
		})
	}
	body.StudentEmail = strings.ToLower(body.StudentEmail)

	student, err := cc.Students.GetByEmail(body.StudentEmail)
	if errors.Is(err, students.ErrStudentNotFound) {
		return utils.NotFound(c, "Student not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to load student")
	}

	trail, err := cc.Trails.Get(body.TrailID)
	if errors.Is(err, trails.ErrTrailNotFound) {
		return utils.NotFound(c, "Trail not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to load trail")
	}

	eligibility := cc.Progress.CheckEligibility(body.TrailID, trail.Videos)
	if !eligibility.IsEligible {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":                "Requisitos do certificado não atendidos",
			"missing_requirements": eligibility.MissingRequirements,
		})
	}

	finalScore := 0
	if eligibility.FinalScore != nil {
		finalScore = int(*eligibility.FinalScore)
	}

	cert, err := cc.Certificates.Generate(
		student.Name, student.Email,
		body.TrailID, trail.Title, trail.Description,
		finalScore,
	)
	if err != nil {
		return utils.InternalServerError(c, "Failed to generate certificate")
	}
	return utils.Created(c, cert)
}

func (cc *CertificatesController) Verify(c *fiber.Ctx) error {
	verification, err := cc.Certificates.Verify(c.Params("code"))
	if err != nil {
		return utils.InternalServerError(c, "Failed to verify certificate")
	}
	return c.JSON(verification)
}

func (cc *CertificatesController) ListByEmail(c *fiber.Ctx) error {
	certs, err := cc.Certificates.ListByEmail(strings.ToLower(c.Params("email")))
	if err != nil {
		return utils.InternalServerError(c, "Failed to list certificates")
	}
	return c.JSON(certs)
}

func (cc *CertificatesController) Get(c *fiber.Ctx) error {
	cert, err := cc.Certificates.GetByID(c.Params("id"))
	if errors.Is(err, certificates.ErrCertificateNotFound) {
		return utils.NotFound(c, "Certificate not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to load certificate")
	}
	return c.JSON(cert)
}
