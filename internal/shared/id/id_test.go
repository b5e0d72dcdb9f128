package id

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()

	id1 := gen.Generate()
	id2 := gen.Generate()

	if id1.String() == id2.String() {
		t.Error("Generated IDs should be unique")
	}
}

func TestNewRequestID(t *testing.T) {
	reqID := NewRequestID()

	if !strings.HasPrefix(reqID.String(), "req_") {
		t.Errorf("RequestID should start with 'req_', got: %s", reqID)
	}
	if len(reqID.String()) != len("req_")+26 {
		t.Errorf("RequestID should carry a 26 character ULID, got: %s", reqID)
	}
	if !IsValidRequestID(reqID.String()) {
		t.Errorf("RequestID should be valid: %s", reqID)
	}
}

func TestRequestIDTimestamp(t *testing.T) {
	before := time.Now()
	reqID := NewRequestID()
	after := time.Now()

	ts, err := reqID.Timestamp()
	if err != nil {
		t.Fatalf("Failed to extract timestamp: %v", err)
	}

	// ULID timestamps have millisecond precision
	if ts.UnixMilli() < before.UnixMilli() || ts.UnixMilli() > after.UnixMilli() {
		t.Errorf("Timestamp %v should be between %v and %v", ts, before, after)
	}
}

func TestIsValidRequestID(t *testing.T) {
	invalid := []string{
		"",
		"req_",
		"req_invalid",
		"01ARZ3NDEKTSV4RRFFQ69G5FAV", // missing prefix
		"sess_01ARZ3NDEKTSV4RRFFQ69G5FAV",
	}

	for _, s := range invalid {
		if IsValidRequestID(s) {
			t.Errorf("ID should be invalid: %q", s)
		}
	}
}

func TestNewDeviceID(t *testing.T) {
	a := NewDeviceID()
	b := NewDeviceID()

	if a == b {
		t.Error("Device IDs should be unique")
	}
	if !IsValidDeviceID(a.String()) {
		t.Errorf("Device ID should be a UUID, got %s", a)
	}
	if IsValidDeviceID("not-a-uuid") {
		t.Error("not-a-uuid should be rejected")
	}
}

func TestConcurrentGeneration(t *testing.T) {
	const goroutines = 50
	const idsPerGoroutine = 100

	var wg sync.WaitGroup
	idChan := make(chan RequestID, goroutines*idsPerGoroutine)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < idsPerGoroutine; j++ {
				idChan <- NewRequestID()
			}
		}()
	}

	wg.Wait()
	close(idChan)

	seen := make(map[RequestID]bool)
	for reqID := range idChan {
		if seen[reqID] {
			t.Errorf("Duplicate ID generated: %s", reqID)
		}
		seen[reqID] = true
	}
}
