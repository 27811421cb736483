package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name   string  `json:"name" validate:"required,min=2,max=10"`
	Email  string  `json:"email" validate:"required,email"`
	Status string  `json:"status" validate:"nullable,in=pending,shipped,delivered"`
	Age    *int    `json:"age" validate:"nullable,integer,min=18"`
	Color  *string `json:"color" validate:"nullable,max=7"`
}

func TestStructPassesValidInput(t *testing.T) {
	age := 21
	errs := Struct(&sample{
		Name:   "Ada",
		Email:  "ada@example.com",
		Status: "shipped",
		Age:    &age,
	})
	assert.Empty(t, errs)
}

func TestStructReportsMissingRequired(t *testing.T) {
	errs := Struct(&sample{Email: "ada@example.com"})
	assert.Contains(t, errs, "name")
	assert.NotContains(t, errs, "email")
}

func TestStructRejectsBadEmail(t *testing.T) {
	errs := Struct(&sample{Name: "Ada", Email: "not-an-email"})
	assert.Contains(t, errs, "email")
}

func TestStructNullableSkipsEmpty(t *testing.T) {
	errs := Struct(&sample{Name: "Ada", Email: "ada@example.com"})
	assert.NotContains(t, errs, "status")
	assert.NotContains(t, errs, "age")
	assert.NotContains(t, errs, "color")
}

func TestStructInRule(t *testing.T) {
	errs := Struct(&sample{Name: "Ada", Email: "ada@example.com", Status: "lost"})
	assert.Equal(t, "The selected status is invalid.", errs["status"])
}

func TestStructValidatesThroughPointer(t *testing.T) {
	age := 15
	errs := Struct(&sample{Name: "Ada", Email: "ada@example.com", Age: &age})
	assert.Contains(t, errs, "age")
}

func TestStructLengthBounds(t *testing.T) {
	errs := Struct(&sample{Name: "A", Email: "ada@example.com"})
	assert.Contains(t, errs, "name")

	errs = Struct(&sample{Name: "much-too-long-name", Email: "ada@example.com"})
	assert.Contains(t, errs, "name")
}
