package extension

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

// testExtension is a minimal Extension implementation for testing.
type testExtension struct {
	name string
}

func (e testExtension) Name() string                { return e.name }
func (e testExtension) Commands() []*cobra.Command  { return nil }
func (e testExtension) MCPTools() []MCPTool         { return nil }
func (e testExtension) MCPResources() []MCPResource { return nil }

func TestRegister_PanicOnDuplicate(t *testing.T) {
	// Register with a unique name for this test
	name := "test-duplicate-panic"
	Register(testExtension{name: name})

	// Registering the same name again should panic
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration, got none")
		}
	}()

	Register(testExtension{name: name})
}

func TestRegister_PreservesOrder(t *testing.T) {
	names := []string{"test-order-b", "test-order-a", "test-order-c"}
	for _, n := range names {
		Register(testExtension{name: n})
	}

	// Names() must contain the test extensions in registration order,
	// not sorted order
	all := Names()
	var got []string
	for _, n := range all {
		for _, want := range names {
			if n == want {
				got = append(got, n)
			}
		}
	}
	assert.Equal(t, names, got)
}

func TestGet(t *testing.T) {
	Register(testExtension{name: "test-get"})

	assert.NotNil(t, Get("test-get"))
	assert.Nil(t, Get("test-get-missing"))
}
