package naming

import "testing"

func TestCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"firstName", "firstName"},
		{"FirstName", "firstName"},
		{"first_name", "firstName"},
		{"first-name", "firstName"},
		{"HTTPRequest", "httpRequest"},
		{"order item", "orderItem"},
		{"a", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := CamelCase(tt.input); got != tt.expected {
				t.Errorf("CamelCase(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCamelCaseIdempotent(t *testing.T) {
	inputs := []string{"firstName", "orderItem", "httpRequest", "x"}
	for _, s := range inputs {
		once := CamelCase(s)
		if twice := CamelCase(once); twice != once {
			t.Errorf("CamelCase not idempotent on %q: %q != %q", s, twice, once)
		}
	}
}

func TestCamelKebabRoundTrip(t *testing.T) {
	// Derived identifiers always round-trip through kebab-case back to the
	// same lower-camel form.
	inputs := []string{"firstName", "shippingAddress", "orderItemCount", "id"}
	for _, s := range inputs {
		if got := CamelCase(KebabCase(s)); got != s {
			t.Errorf("CamelCase(KebabCase(%q)) = %q, want %q", s, got, s)
		}
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"firstName", "first_name"},
		{"FirstName", "first_name"},
		{"HTTPRequest", "http_request"},
		{"already_snake", "already_snake"},
		{"OrderItem", "order_item"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SnakeCase(tt.input); got != tt.expected {
				t.Errorf("SnakeCase(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestKebabCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"firstName", "first-name"},
		{"OrderItem", "order-item"},
		{"already-kebab", "already-kebab"},
	}

	for _, tt := range tests {
		if got := KebabCase(tt.input); got != tt.expected {
			t.Errorf("KebabCase(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestStartCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"firstName", "First Name"},
		{"order_item", "Order Item"},
		{"id", "Id"},
	}

	for _, tt := range tests {
		if got := StartCase(tt.input); got != tt.expected {
			t.Errorf("StartCase(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestCapitalize(t *testing.T) {
	if got := Capitalize("order"); got != "Order" {
		t.Errorf("Capitalize(order) = %q", got)
	}
	if got := Capitalize(""); got != "" {
		t.Errorf("Capitalize(empty) = %q", got)
	}
	if got := Decapitalize("Order"); got != "order" {
		t.Errorf("Decapitalize(Order) = %q", got)
	}
}
