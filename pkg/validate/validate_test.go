package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/freshbasket/pkg/validate"
)

type checkoutInput struct {
	UserID          uint   `json:"user_id"          validate:"required"`
	StoreID         uint   `json:"store_id"         validate:"nullable,gte=1"`
	DeliveryAddress string `json:"delivery_address" validate:"nullable,max=500"`
	PaymentMethod   string `json:"payment_method"   validate:"nullable,in=cash,card,upi"`
}

type otpInput struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code"  validate:"required,digits=6"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(checkoutInput{
		UserID:        42,
		PaymentMethod: "card",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(checkoutInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required error")
	}
	if _, ok := errs["user_id"]; !ok {
		t.Error("expected user_id to be required")
	}
}

func TestInRuleWithMultipleValues(t *testing.T) {
	errs := validate.Struct(checkoutInput{UserID: 1, PaymentMethod: "bitcoin"})
	if _, ok := errs["payment_method"]; !ok {
		t.Errorf("expected payment_method to be rejected, got: %v", errs)
	}

	errs = validate.Struct(checkoutInput{UserID: 1, PaymentMethod: "upi"})
	if _, ok := errs["payment_method"]; ok {
		t.Errorf("upi should be allowed, got: %v", errs)
	}
}

func TestNullableSkipsEmpty(t *testing.T) {
	errs := validate.Struct(checkoutInput{UserID: 1})
	if validate.HasErrors(errs) {
		t.Errorf("nullable fields left empty should pass, got: %v", errs)
	}
}

func TestDigits(t *testing.T) {
	errs := validate.Struct(otpInput{Email: "a@b.com", Code: "123456"})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}

	for _, bad := range []string{"12345", "1234567", "12a456", ""} {
		errs = validate.Struct(otpInput{Email: "a@b.com", Code: bad})
		if _, ok := errs["code"]; !ok {
			t.Errorf("code %q should fail digits=6", bad)
		}
	}
}

func TestEmail(t *testing.T) {
	errs := validate.Struct(otpInput{Email: "not-an-email", Code: "123456"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email error")
	}
}
