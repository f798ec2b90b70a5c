package response

import (
	"encoding/json"
	"testing"
)

func TestSuccess(t *testing.T) {
	data := map[string]string{"name": "test"}
	resp := Success(data)

	if !resp.Success {
		t.Error("Expected success to be true")
	}
	if resp.Data == nil {
		t.Error("Expected data to be set")
	}
	if resp.Errors != nil {
		t.Error("Expected errors to be nil")
	}
	if resp.Message != "" {
		t.Error("Expected message to be empty")
	}
}

func TestSuccess_JSONFormat(t *testing.T) {
	data := map[string]string{"id": "123"}
	resp := Success(data)

	jsonBytes, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(jsonBytes, &parsed); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if parsed["success"] != true {
		t.Errorf("Expected success=true, got %v", parsed["success"])
	}
	if _, ok := parsed["message"]; ok {
		t.Error("Expected message field to be omitted")
	}
	if _, ok := parsed["errors"]; ok {
		t.Error("Expected errors field to be omitted")
	}
}

func TestError(t *testing.T) {
	resp := Error("Submission not found")

	if resp.Success {
		t.Error("Expected success to be false")
	}
	if resp.Data != nil {
		t.Error("Expected data to be nil")
	}
	if resp.Message != "Submission not found" {
		t.Errorf("Expected message 'Submission not found', got '%s'", resp.Message)
	}
}

func TestValidationFailed(t *testing.T) {
	errs := []string{"Text must be at least 10 characters", "Invalid email address"}
	resp := ValidationFailed(errs)

	if resp.Success {
		t.Error("Expected success to be false")
	}
	if resp.Message != "Validation failed" {
		t.Errorf("Expected message 'Validation failed', got '%s'", resp.Message)
	}
	if len(resp.Errors) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(resp.Errors))
	}
	if resp.Errors[0] != errs[0] || resp.Errors[1] != errs[1] {
		t.Error("Expected all validation errors to be carried in order")
	}
}

func TestValidationFailed_JSONFormat(t *testing.T) {
	resp := ValidationFailed([]string{"Invalid submission type"})

	jsonBytes, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(jsonBytes, &parsed); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if parsed["success"] != false {
		t.Errorf("Expected success=false, got %v", parsed["success"])
	}
	errs, ok := parsed["errors"].([]interface{})
	if !ok || len(errs) != 1 {
		t.Errorf("Expected errors list with one entry, got %v", parsed["errors"])
	}
}

func TestDefaultMessages(t *testing.T) {
	cases := []struct {
		name string
		resp *Response
		want string
	}{
		{"unauthorized", Unauthorized(""), "Unauthorized. Admin access required."},
		{"not found", NotFound(""), "Resource not found"},
		{"rate limited", TooManyRequests(""), "Too many requests, please try again later"},
		{"internal", InternalError(""), "An internal error occurred"},
		{"bad request", BadRequest(""), "Bad request"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.resp.Message != tc.want {
				t.Errorf("Expected default message '%s', got '%s'", tc.want, tc.resp.Message)
			}
			if tc.resp.Success {
				t.Error("Expected success to be false")
			}
		})
	}
}
