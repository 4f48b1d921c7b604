package theme

import (
	"strings"
	"testing"

	"github.com/zhubert/navigator/internal/errors"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Errorf("Validate(Default()) = %v", err)
	}
}

func TestDeriveTokens(t *testing.T) {
	tests := []struct {
		name       string
		theme      Theme
		wantBorder string
		wantBg     string
		wantValid  bool
	}{
		{
			name:       "default theme",
			theme:      Default(),
			wantBorder: "rgba(3,216,243,0.3)",
			wantBg:     "#1a1a2ed9",
			wantValid:  true,
		},
		{
			name:       "uppercase hex",
			theme:      Theme{PrimaryColor: "#FF8000", BackgroundColor: "#000000"},
			wantBorder: "rgba(255,128,0,0.3)",
			wantBg:     "#000000d9",
			wantValid:  true,
		},
		{
			name:       "short hex",
			theme:      Theme{PrimaryColor: "#111", BackgroundColor: "#444"},
			wantBorder: "rgba(17,1,0,0.3)",
			wantBg:     "#444d9",
			wantValid:  false,
		},
		{
			name:       "not hex",
			theme:      Theme{PrimaryColor: "neon", BackgroundColor: "#000"},
			wantBorder: "rgba(0,0,0,0.3)",
			wantBg:     "#000d9",
			wantValid:  false,
		},
		{
			name:       "empty",
			theme:      Theme{},
			wantBorder: "rgba(0,0,0,0.3)",
			wantBg:     "d9",
			wantValid:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveTokens(tt.theme)
			if got.BorderColor != tt.wantBorder {
				t.Errorf("BorderColor = %q, want %q", got.BorderColor, tt.wantBorder)
			}
			if got.BackgroundAlpha85 != tt.wantBg {
				t.Errorf("BackgroundAlpha85 = %q, want %q", got.BackgroundAlpha85, tt.wantBg)
			}
			if got.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", got.Valid, tt.wantValid)
			}
		})
	}
}

func TestValidate_ListsMissingFields(t *testing.T) {
	err := Validate(Theme{PrimaryColor: "#111111"})
	if !errors.Is(err, errors.KindValidationFailed) {
		t.Fatalf("Validate() = %v, want validation failure", err)
	}
	for _, field := range []string{FieldAccent, FieldText, FieldBackground} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
	if strings.Contains(err.Error(), FieldPrimary) {
		t.Errorf("error %q mentions a field that was present", err)
	}
}

func TestValidate_WhitespaceIsPresent(t *testing.T) {
	if err := Validate(Theme{PrimaryColor: " ", AccentColor: "#222222", TextColor: "#333333", BackgroundColor: "#444444"}); err != nil {
		t.Errorf("Validate() = %v, want nil for a non-empty value", err)
	}
}

func TestParse(t *testing.T) {
	got, err := Parse([]byte(`{"primaryColor":"#111","accentColor":"#222","textColor":"#333","backgroundColor":"#444","extra":1}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := Theme{PrimaryColor: "#111", AccentColor: "#222", TextColor: "#333", BackgroundColor: "#444"}
	if got != want {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind errors.Kind
	}{
		{"not json", `{primaryColor:}`, errors.KindMalformedResponse},
		{"wrong type", `{"primaryColor":1}`, errors.KindMalformedResponse},
		{"missing field", `{"primaryColor":"#111","accentColor":"#222","textColor":"#333"}`, errors.KindValidationFailed},
		{"keys in wrong case", `{"PRIMARYCOLOR":"#111111","AccentColor":"#222222","textcolor":"#333333","BACKGROUNDCOLOR":"#444444"}`, errors.KindValidationFailed},
		{"null value", `{"primaryColor":null,"accentColor":"#222","textColor":"#333","backgroundColor":"#444"}`, errors.KindValidationFailed},
		{"not an object", `["#111"]`, errors.KindMalformedResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.raw))
			if !errors.Is(err, tt.kind) {
				t.Errorf("Parse() error = %v, want kind %v", err, tt.kind)
			}
			if got != (Theme{}) {
				t.Errorf("Parse() = %+v, want zero theme", got)
			}
		})
	}
}

func TestVariables(t *testing.T) {
	vars := Variables(Default())
	if len(vars) != 7 {
		t.Fatalf("Variables() has %d entries, want 7", len(vars))
	}
	checks := map[string]string{
		VarPrimary:               "#03d8f3",
		VarGlow:                  "#03d8f3",
		VarBackgroundTransparent: "#1a1a2ed9",
		VarBorder:                "rgba(3,216,243,0.3)",
	}
	for k, want := range checks {
		if vars[k] != want {
			t.Errorf("Variables()[%s] = %q, want %q", k, vars[k], want)
		}
	}
}
