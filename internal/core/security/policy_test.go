package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolicy(t *testing.T) {
	t.Run("compiles default rules", func(t *testing.T) {
		p, err := NewPolicy(DefaultRules)
		require.NoError(t, err)
		require.NotNil(t, p)
	})

	t.Run("rejects broken expression", func(t *testing.T) {
		_, err := NewPolicy(`role == `)
		assert.Error(t, err)
	})

	t.Run("rejects non-bool expression", func(t *testing.T) {
		_, err := NewPolicy(`role`)
		assert.Error(t, err)
	})
}

func TestDefaultRules(t *testing.T) {
	p := MustPolicy(DefaultRules)

	tests := []struct {
		name string
		req  Request
		want bool
	}{
		{"admin reads anything", Request{Role: "admin", Resource: "audit", Action: "read"}, true},
		{"admin manages users", Request{Role: "admin", Resource: "user", Action: "create"}, true},
		{"secretary manages clients", Request{Role: "secretary", Resource: "client", Action: "update"}, true},
		{"secretary manages events", Request{Role: "secretary", Resource: "event", Action: "delete"}, true},
		{"secretary records payments", Request{Role: "secretary", Resource: "transaction", Action: "update"}, true},
		{"secretary blocked from users", Request{Role: "secretary", Resource: "user", Action: "read"}, false},
		{"secretary blocked from audit", Request{Role: "secretary", Resource: "audit", Action: "read"}, false},
		{"employee reads events", Request{Role: "employee", Resource: "event", Action: "read"}, true},
		{"employee reads agenda", Request{Role: "employee", Resource: "agenda", Action: "read"}, true},
		{"employee cannot edit events", Request{Role: "employee", Resource: "event", Action: "update"}, false},
		{"employee cannot see clients", Request{Role: "employee", Resource: "client", Action: "read"}, false},
		{"employee clocks own shift", Request{Role: "employee", Resource: "time_record", Action: "create", Own: true}, true},
		{"employee reads own records", Request{Role: "employee", Resource: "time_record", Action: "read", Own: true}, true},
		{"employee blocked from others records", Request{Role: "employee", Resource: "time_record", Action: "read", Own: false}, false},
		{"unknown role denied", Request{Role: "guest", Resource: "event", Action: "read"}, false},
		{"empty role denied", Request{Resource: "event", Action: "read"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Check(tt.req))
		})
	}
}

func TestCanAccess(t *testing.T) {
	p := MustPolicy(DefaultRules)

	assert.True(t, p.CanAccess("admin", "settings", "update"))
	assert.True(t, p.CanAccess("secretary", "report", "read"))
	// CanAccess checks without ownership, so own-scoped grants do not apply.
	assert.False(t, p.CanAccess("employee", "time_record", "read"))
}

func TestMustPolicyPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustPolicy(`resource ==`)
	})
}
