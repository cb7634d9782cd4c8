package service

import (
	"strings"
	"testing"

	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validHelpRequest() *models.HelpRequest {
	return &models.HelpRequest{
		Category:    "medical_help",
		Title:       "Medical Help",
		Description: "Tourist feels unwell near the museum",
		ContactInfo: "+971500000000",
		Location:    models.Address{Address: "Dubai Mall"},
		Urgency:     models.UrgencyMedium,
	}
}

func TestHelpRequestValidator_Valid(t *testing.T) {
	v := NewHelpRequestValidator()

	assert.NoError(t, v.Validate(validHelpRequest()))
}

func TestHelpRequestValidator_AllRequiredMissing(t *testing.T) {
	v := NewHelpRequestValidator()
	req := &models.HelpRequest{Title: "   ", Location: models.Address{Address: "\t"}}

	err := v.Validate(req)

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{
		"Category is required",
		"Title is required",
		"Description is required",
		"Contact information is required",
		"Location address is required",
	}, ve.Messages)
}

func TestHelpRequestValidator_LengthAfterRequired(t *testing.T) {
	v := NewHelpRequestValidator()
	req := validHelpRequest()
	req.Title = strings.Repeat("a", 201)
	req.Description = strings.Repeat("b", 2001)
	req.ContactInfo = ""

	err := v.Validate(req)

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{
		"Contact information is required",
		"Title cannot exceed 200 characters",
		"Description cannot exceed 2000 characters",
	}, ve.Messages)
}

func TestHelpRequestValidator_LengthBoundary(t *testing.T) {
	v := NewHelpRequestValidator()
	req := validHelpRequest()
	req.Title = strings.Repeat("a", 200)
	req.Description = strings.Repeat("b", 2000)

	assert.NoError(t, v.Validate(req))
}

func TestHelpRequestValidator_Urgency(t *testing.T) {
	v := NewHelpRequestValidator()
	req := validHelpRequest()
	req.Urgency = "extreme"

	err := v.Validate(req)

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Messages, 1)
	assert.Contains(t, ve.Messages[0], "urgency must be one of")

	req.Urgency = ""
	assert.NoError(t, v.Validate(req))
}

// Длина считается в символах: 200 кириллических букв проходят, хотя это 400 байт
func TestHelpRequestValidator_LengthCountsRunes(t *testing.T) {
	v := NewHelpRequestValidator()
	req := validHelpRequest()
	req.Title = strings.Repeat("ж", 200)
	req.Description = strings.Repeat("щ", 2000)

	assert.NoError(t, v.Validate(req))

	req.Title = strings.Repeat("ж", 201)
	err := v.Validate(req)

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"Title cannot exceed 200 characters"}, ve.Messages)
}

func TestTripValidator_RequiredThenFormat(t *testing.T) {
	// Подготовка
	v := NewTripValidator()
	input := &models.TripInput{
		Name:      " ",
		StartDate: "10.03.2025",
		Members: []models.TripMember{
			{Name: "Asha", DocumentNumber: "A1"},
			{Name: "", DocumentNumber: "B2", DocumentType: "licence"},
		},
	}

	// Действие
	err := v.Validate(input)

	// Проверки
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{
		"Trip name is required",
		"Destination is required",
		"End date is required",
		"Member 2: name is required",
		"Member 2: documentType must be one of: aadhar passport",
		"Start date must be in YYYY-MM-DD format",
	}, ve.Messages)
}

func TestTripValidator_Dates(t *testing.T) {
	testCases := []struct {
		name     string
		start    string
		end      string
		expected []string
	}{
		{"end after start", "2025-03-10", "2025-03-11", nil},
		{"rfc3339 accepted", "2025-03-10T08:00:00Z", "2025-03-12T08:00:00+05:30", nil},
		{"same day", "2025-03-10", "2025-03-10", []string{"End date must be after start date"}},
		{"end before start", "2025-03-10", "2025-03-01", []string{"End date must be after start date"}},
		{"bad end", "2025-03-10", "soon", []string{"End date must be in YYYY-MM-DD format"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := NewTripValidator()
			input := &models.TripInput{Name: "Goa", Destination: "Panaji", StartDate: tc.start, EndDate: tc.end}

			err := v.Validate(input)

			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			var ve *models.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.expected, ve.Messages)
		})
	}
}

func TestTripValidator_NameLengthCountsRunes(t *testing.T) {
	v := NewTripValidator()
	input := &models.TripInput{
		Name:        strings.Repeat("П", 200),
		Destination: "Сочи",
		StartDate:   "2025-03-10",
		EndDate:     "2025-03-12",
		Description: strings.Repeat("о", 2001),
	}

	err := v.Validate(input)

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"Description cannot exceed 2000 characters"}, ve.Messages)
}
