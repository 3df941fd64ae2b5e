package coerce

import (
	"errors"
	"testing"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accumulate(t *testing.T, a Accumulator, def any, raws ...string) any {
	t.Helper()
	var current any
	for _, raw := range raws {
		var err error
		current, err = a.Accumulate(raw, current, def)
		require.NoError(t, err)
	}

	return current
}

func TestFixed(t *testing.T) {
	a := Fixed("on")
	assert.Equal(t, "on", accumulate(t, a, nil, "", "ignored"))

	v, ok := IsFixed(a)
	assert.True(t, ok)
	assert.Equal(t, "on", v)

	_, ok = IsFixed(Identity())
	assert.False(t, ok)
}

func TestIdentity_LastWins(t *testing.T) {
	assert.Equal(t, "b", accumulate(t, Identity(), nil, "a", "b"))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 3, accumulate(t, Count(), nil, "", "", ""))
	assert.Equal(t, 12, accumulate(t, Count(), 10, "", ""))
}

func TestAppend(t *testing.T) {
	def := []string{"base"}
	got := accumulate(t, Append(), def, "a", "b")

	if diff := cmp.Diff([]string{"base", "a", "b"}, got); diff != "" {
		t.Errorf("Append() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"base"}, def, "default must not be modified")
}

func TestSplit(t *testing.T) {
	got := accumulate(t, Split(), nil, "a, b", "c,,d")
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestKeyValue(t *testing.T) {
	def := map[string]string{"env": "dev"}
	got := accumulate(t, KeyValue(), def, "env=prod", "region=eu=west")

	if diff := cmp.Diff(map[string]string{"env": "prod", "region": "eu=west"}, got); diff != "" {
		t.Errorf("KeyValue() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "dev", def["env"])

	_, err := KeyValue().Accumulate("novalue", nil, nil)
	assert.True(t, errors.Is(err, ErrMalformedValue))
	_, err = KeyValue().Accumulate("=v", nil, nil)
	assert.Error(t, err)
}

func TestExpandRange(t *testing.T) {
	tests := []struct {
		raw     string
		want    []int
		wantErr bool
	}{
		{raw: "1-3,7", want: []int{1, 2, 3, 7}},
		{raw: "5", want: []int{5}},
		{raw: "-2-1", want: []int{-2, -1, 0, 1}},
		{raw: "3-1", wantErr: true},
		{raw: "a-b", wantErr: true},
		{raw: "1,,2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ExpandRange(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRange_Accumulates(t *testing.T) {
	assert.Equal(t, []int{1, 2, 9}, accumulate(t, Range(), nil, "1-2", "9"))
}

func TestScalarConversions(t *testing.T) {
	tests := []struct {
		name    string
		acc     Accumulator
		raw     string
		want    any
		wantErr bool
	}{
		{name: "int", acc: Int(), raw: "42", want: 42},
		{name: "int bad", acc: Int(), raw: "4x", wantErr: true},
		{name: "float", acc: Float(), raw: "1.5", want: 1.5},
		{name: "float bad", acc: Float(), raw: "x", wantErr: true},
		{name: "bool empty", acc: Bool(), raw: "", want: true},
		{name: "bool false", acc: Bool(), raw: "false", want: false},
		{name: "bool bad", acc: Bool(), raw: "maybe", wantErr: true},
		{name: "duration", acc: Duration(), raw: "1m30s", want: 90 * time.Second},
		{name: "duration bad", acc: Duration(), raw: "soon", wantErr: true},
		{name: "uuid bad", acc: UUID(), raw: "nope", wantErr: true},
		{name: "version bad", acc: Version(), raw: "one", wantErr: true},
		{name: "date bad", acc: Date(), raw: "banana", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.acc.Accumulate(tt.raw, nil, nil)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRichConversions(t *testing.T) {
	id := uuid.New()
	got, err := UUID().Accumulate(id.String(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = Version().Accumulate("1.2.3", nil, nil)
	require.NoError(t, err)
	assert.True(t, got.(*semver.Version).Equal(semver.MustParse("1.2.3")))

	got, err = Date().Accumulate("2024-03-01", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2024, got.(time.Time).Year())
	assert.Equal(t, time.March, got.(time.Time).Month())
}

func TestConvert(t *testing.T) {
	conv := Convert(Int())
	v, err := conv("7")
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}
