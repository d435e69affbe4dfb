package xid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winterwell/wwutils/pkg/errs"
)

func TestNew_RoundTrip(t *testing.T) {
	t.Parallel()

	s := New("alice", "twitter")
	assert.Equal(t, "alice@twitter", s)

	id, err := ID(s)
	require.NoError(t, err)
	assert.Equal(t, "alice", id)

	service, err := Service(s)
	require.NoError(t, err)
	assert.Equal(t, "twitter", service)
}

func TestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"simple", "winterstein@twitter", "winterstein", nil},
		{"id containing at", "daniel@winterwell.com@email", "daniel@winterwell.com", nil},
		{"empty id", "@web", "", nil},
		{"empty input", "", "", errs.ErrEmptyInput},
		{"no at", "bob", "", errs.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ID(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"simple", "winterstein@twitter", "twitter", nil},
		{"last at wins", "daniel@winterwell.com@email", "email", nil},
		{"empty service", "bob@", "", nil},
		{"no at", "no-at-sign", "", errs.ErrInvalidFormat},
		{"empty input", "", "", errs.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Service(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_ServiceWithAtBreaksRoundTrip(t *testing.T) {
	t.Parallel()

	s := New("alice", "mail@example")
	id, err := ID(s)
	require.NoError(t, err)
	assert.Equal(t, "alice@mail", id)
}

func TestFromValues(t *testing.T) {
	t.Parallel()

	got, err := FromValues("bob", "youtube")
	require.NoError(t, err)
	assert.Equal(t, "bob@youtube", got)

	_, err = FromValues(nil, "youtube")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = FromValues("bob", 42)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestParse(t *testing.T) {
	t.Parallel()

	x, err := Parse("p_bob@youtube")
	require.NoError(t, err)
	assert.Equal(t, XID{ID: "p_bob", Service: "youtube"}, x)
	assert.Equal(t, "p_bob@youtube", x.String())

	_, err = Parse("")
	assert.ErrorIs(t, err, errs.ErrEmptyInput)
	_, err = Parse("bob")
	assert.ErrorIs(t, err, errs.ErrInvalidFormat)
}

func TestDewart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"p_bob@youtube", "bob"},
		{"v_bob@youtube", "bob"},
		{"g_bob@google", "bob"},
		{"c_bob@crm", "bob"},
		{"p_bob@twitter", "p_bob"},
		{"p_bob@facebook", "p_bob"},
		{"winterstein@twitter", "winterstein"},
		{"x_bob@youtube", "x_bob"},
		{"pxbob@youtube", "pxbob"},
		{"p_@youtube", "p_"},
		{"p_b@youtube", "b"},
		{"p_bob", "bob"},
		{"bob", "bob"},
		{"p_daniel@winterwell.com@email", "daniel@winterwell.com"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Dewart(tt.input))
		})
	}
}

func TestDewart_Idempotent(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"", "bob", "p_bob@youtube", "v_alice@web", "winterstein@twitter",
		"ab@x", "c_x@y", "p_daniel@email",
	} {
		once := Dewart(s)
		assert.Equal(t, once, Dewart(once), "Dewart(Dewart(%q))", s)
	}
}

func TestDewart_BareIDHasNoService(t *testing.T) {
	t.Parallel()

	// Dewarting drops the service, so a Twitter id keeps its prefix only
	// while the service is still attached.
	once := Dewart("p_bob@twitter")
	assert.Equal(t, "p_bob", once)
	assert.Equal(t, "bob", Dewart(once))
}

func TestPrettyName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"alice@twitter", "@alice"},
		{"p_bob@youtube", "bob"},
		{"p_bob@twitter", "@p_bob"},
		{"daniel@winterwell.com@email", "daniel"},
		{"v_daniel@winterwell.com@soda.sh", "daniel"},
		{"just-a-name", "just-a-name"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PrettyName(tt.input))
		})
	}
}
