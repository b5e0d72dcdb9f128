// Package id provides ID generation for the client.
//
// Request IDs are prefixed ULIDs (req_01J...) so they sort by time in server
// logs and are easy to spot when a support ticket quotes one. Device IDs are
// random UUIDs generated once per installation and persisted by preferences.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// RequestID identifies one outbound API request (shared by its retry)
type RequestID string

// DeviceID identifies one client installation
type DeviceID string

const RequestPrefix = "req"

// Generator generates ULIDs
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the shared generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a ULID generator backed by crypto/rand
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source,
// for deterministic tests.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewRequestID generates a new request ID
func NewRequestID() RequestID {
	return RequestID(Default().GenerateWithPrefix(RequestPrefix))
}

// NewDeviceID generates a new random device ID
func NewDeviceID() DeviceID {
	return DeviceID(uuid.NewString())
}

func (id RequestID) String() string { return string(id) }
func (id DeviceID) String() string  { return string(id) }

// Timestamp extracts the creation time of a request ID.
func (id RequestID) Timestamp() (time.Time, error) {
	raw, ok := strings.CutPrefix(string(id), RequestPrefix+"_")
	if !ok {
		return time.Time{}, fmt.Errorf("request id %q has no %s_ prefix", id, RequestPrefix)
	}
	parsed, err := ulid.Parse(raw)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}

// IsValidRequestID checks that s is a prefixed ULID
func IsValidRequestID(s string) bool {
	_, err := RequestID(s).Timestamp()
	return err == nil
}

// IsValidDeviceID checks that s parses as a UUID
func IsValidDeviceID(s string) bool {
	return uuid.Validate(s) == nil
}
