package service

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

// messageTable - тексты ошибок по пути поля без имени структуры и индексов
type messageTable struct {
	required map[string]string
	length   map[string]string
}

var helpRequestMessages = messageTable{
	required: map[string]string{
		"Category":         "Category is required",
		"Title":            "Title is required",
		"Description":      "Description is required",
		"ContactInfo":      "Contact information is required",
		"Location.Address": "Location address is required",
	},
	length: map[string]string{
		"Title":       "Title cannot exceed 200 characters",
		"Description": "Description cannot exceed 2000 characters",
	},
}

var tripMessages = messageTable{
	required: map[string]string{
		"Name":                        "Trip name is required",
		"Destination":                 "Destination is required",
		"StartDate":                   "Start date is required",
		"EndDate":                     "End date is required",
		"Members.Name":                "name is required",
		"Members.DocumentNumber":      "document number is required",
		"Members.PhoneNumbers.Number": "phone number is required",
	},
	length: map[string]string{
		"Name":        "Trip name cannot exceed 200 characters",
		"Destination": "Destination cannot exceed 200 characters",
		"Description": "Description cannot exceed 2000 characters",
	},
}

var (
	indexPattern  = regexp.MustCompile(`\[\d+\]`)
	memberPattern = regexp.MustCompile(`^Members\[(\d+)\]`)
)

func newFormValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank validator: %v", err))
	}
	return v
}

// collect проверяет форму и раскладывает нарушения на незаполненные поля и прочие.
// Длина строк считается в символах Unicode.
func collect(v *validator.Validate, form any, table messageTable) (required, other []string, err error) {
	err = v.Struct(form)
	if err == nil {
		return nil, nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, nil, fmt.Errorf("validate form: %w", err)
	}

	for _, fe := range fieldErrs {
		path := fe.StructNamespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		prefix := ""
		if m := memberPattern.FindStringSubmatch(path); m != nil {
			n, _ := strconv.Atoi(m[1])
			prefix = fmt.Sprintf("Member %d: ", n+1)
		}
		field := indexPattern.ReplaceAllString(path, "")

		switch fe.Tag() {
		case "notblank", "required":
			if msg, ok := table.required[field]; ok {
				required = append(required, prefix+msg)
				continue
			}
			required = append(required, prefix+fe.Field()+" is required")
		case "max":
			if msg, ok := table.length[field]; ok {
				other = append(other, prefix+msg)
				continue
			}
			other = append(other, fmt.Sprintf("%s%s cannot exceed %s characters", prefix, fe.Field(), fe.Param()))
		case "oneof":
			other = append(other, fmt.Sprintf("%s%s must be one of: %s", prefix, lowerFirst(fe.Field()), fe.Param()))
		default:
			other = append(other, fmt.Sprintf("%s%s is invalid", prefix, lowerFirst(fe.Field())))
		}
	}
	return required, other, nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// HelpRequestValidator проверяет форму запроса помощи до обращения к хранилищу
type HelpRequestValidator struct {
	validate *validator.Validate
}

func NewHelpRequestValidator() *HelpRequestValidator {
	return &HelpRequestValidator{validate: newFormValidate()}
}

// Validate возвращает *models.ValidationError со всеми нарушениями.
// Сначала идут незаполненные поля, затем превышения длины, порядок полей сохраняется.
func (v *HelpRequestValidator) Validate(req *models.HelpRequest) error {
	required, other, err := collect(v.validate, req, helpRequestMessages)
	if err != nil {
		return err
	}
	if len(required)+len(other) == 0 {
		return nil
	}
	return &models.ValidationError{Messages: append(required, other...)}
}

// TripValidator проверяет форму поездки: поля, участников и даты
type TripValidator struct {
	validate *validator.Validate
}

func NewTripValidator() *TripValidator {
	return &TripValidator{validate: newFormValidate()}
}

// Validate дополнительно проверяет формат дат и что окончание позже начала
func (v *TripValidator) Validate(input *models.TripInput) error {
	required, other, err := collect(v.validate, input, tripMessages)
	if err != nil {
		return err
	}

	start, startErr := parseFormDate(input.StartDate, "Start date", &other)
	end, endErr := parseFormDate(input.EndDate, "End date", &other)
	if startErr == nil && endErr == nil && !end.After(start) {
		other = append(other, "End date must be after start date")
	}

	if len(required)+len(other) == 0 {
		return nil
	}
	return &models.ValidationError{Messages: append(required, other...)}
}

// parseFormDate разбирает непустую дату, ошибка формата дописывается в messages.
// Пустая дата уже учтена как незаполненное поле.
func parseFormDate(value, label string, messages *[]string) (date time.Time, err error) {
	if strings.TrimSpace(value) == "" {
		return date, errEmptyDate
	}
	date, err = models.ParseTripDate(value)
	if err != nil {
		*messages = append(*messages, label+" must be in YYYY-MM-DD format")
	}
	return date, err
}

var errEmptyDate = errors.New("empty date")
