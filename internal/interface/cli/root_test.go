package cli

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func runRoot(args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	cmd := NewRoot()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Fields(s)
}

func TestRoot_DefaultPrintsOneULID(t *testing.T) {
	stdout, stderr, err := runRoot()
	require.NoError(t, err)
	assert.Empty(t, stderr)

	got := lines(stdout)
	require.Len(t, got, 1)
	_, err = ulid.ParseStrict(got[0])
	assert.NoError(t, err)
	assert.Equal(t, got[0]+"\n", stdout)
}

func TestRoot_CountProperty(t *testing.T) {
	for _, k := range []int{0, 1, 3, 50} {
		t.Run(strconv.Itoa(k), func(t *testing.T) {
			stdout, stderr, err := runRoot("--nb", strconv.Itoa(k))
			require.NoError(t, err)
			assert.Empty(t, stderr)
			assert.Equal(t, k, strings.Count(stdout, "\n"))
			assert.Len(t, lines(stdout), k)
		})
	}
}

func TestRoot_ShortFlags(t *testing.T) {
	stdout, _, err := runRoot("-n", "4", "-u", "-m")
	require.NoError(t, err)

	got := lines(stdout)
	require.Len(t, got, 4)
	for i, line := range got {
		assert.Regexp(t, uuidPattern, line)
		if i > 0 {
			assert.Less(t, got[i-1], line)
		}
	}
}

func TestRoot_UUIDFormat(t *testing.T) {
	stdout, _, err := runRoot("--uuid")
	require.NoError(t, err)

	got := lines(stdout)
	require.Len(t, got, 1)
	assert.Regexp(t, uuidPattern, got[0])
}

func TestRoot_MonotonicDateScenario(t *testing.T) {
	stdout, _, err := runRoot("--date", "2020-01-01", "--nb", "3", "--monotonic")
	require.NoError(t, err)

	got := lines(stdout)
	require.Len(t, got, 3)

	for i, line := range got {
		id, err := ulid.ParseStrict(line)
		require.NoError(t, err)
		assert.Equal(t, "2020-01-01", ulid.Time(id.Time()).UTC().Format("2006-01-02"))
		if i > 0 {
			assert.LessOrEqual(t, got[i-1], line)
		}
	}
}

func TestRoot_DateSeedWithoutMonotonic(t *testing.T) {
	stdout, _, err := runRoot("-d", "1970-01-01", "-n", "2")
	require.NoError(t, err)

	for _, line := range lines(stdout) {
		id, err := ulid.ParseStrict(line)
		require.NoError(t, err)
		ts := ulid.Time(id.Time()).UTC()
		assert.Equal(t, 1970, ts.Year())
		assert.Equal(t, time.January, ts.Month())
		assert.Equal(t, 1, ts.Day())
	}
}

func TestRoot_DateBefore1970(t *testing.T) {
	stdout, stderr, err := runRoot("--date", "1969-12-31", "--nb", "5")
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error: 1969-12-31: dates before 1970 are not supported\n", stderr)
}

func TestRoot_DateMalformed(t *testing.T) {
	for _, date := range []string{"2020/01/01", "2020-13-01", "2021-02-29", "yesterday", ""} {
		t.Run(date, func(t *testing.T) {
			stdout, stderr, err := runRoot("--date", date, "--nb", "2")
			require.Error(t, err)
			assert.Empty(t, stdout)
			assert.True(t, strings.HasPrefix(stderr, "Error: "+date+": "), "stderr: %q", stderr)
			assert.NotContains(t, stderr, "Usage:")
			assert.Equal(t, 1, strings.Count(stderr, "\n"))
		})
	}
}

func TestRoot_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative count", []string{"--nb", "-1"}},
		{"non-numeric count", []string{"-n", "many"}},
		{"unknown flag", []string{"--hex"}},
		{"unexpected argument", []string{"extra"}},
		{"missing date value", []string{"--date"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := runRoot(tt.args...)
			require.Error(t, err)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestRoot_DebugLogGoesToStderr(t *testing.T) {
	stdout, stderr, err := runRoot("--log-level", "debug", "-n", "2")
	require.NoError(t, err)

	assert.Len(t, lines(stdout), 2)
	assert.Contains(t, stderr, "DEBUG: generating 2 identifier(s)")
}

func TestRoot_EmptyDateIsNotTheClock(t *testing.T) {
	for _, args := range [][]string{{"--date", ""}, {"--date="}, {"-d", ""}} {
		stdout, stderr, err := runRoot(args...)
		require.Error(t, err, "args %q", args)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "parsing time")
	}
}

func TestRoot_InfoLogReportsDateSeed(t *testing.T) {
	stdout, stderr, err := runRoot("--log-level", "info", "--date", "2020-01-01")
	require.NoError(t, err)

	assert.Len(t, lines(stdout), 1)
	assert.Contains(t, stderr, "INFO: timestamps pinned to 2020-01-01")
	assert.NotContains(t, stderr, "DEBUG:")
}

func TestRoot_Inspect(t *testing.T) {
	stdout, _, err := runRoot("inspect", "01ARZ3NDEKTSV4RRFFQ69G5FAV", "01563e3a-b5d3-d676-4c61-efb99302bd5b")
	require.NoError(t, err)

	assert.Contains(t, stdout, "ulid: 01ARZ3NDEKTSV4RRFFQ69G5FAV")
	assert.Contains(t, stdout, "uuid: 01563e3a-b5d3-d676-4c61-efb99302bd5b")
	assert.Contains(t, stdout, "timestamp_ms: 1469922850259")
	assert.Contains(t, stdout, "---")
}

func TestRoot_InspectRoundTripsGeneratedIDs(t *testing.T) {
	native, _, err := runRoot()
	require.NoError(t, err)
	id := strings.TrimSpace(native)

	stdout, _, err := runRoot("inspect", id)
	require.NoError(t, err)
	assert.Contains(t, stdout, "ulid: "+id)
}

func TestRoot_InspectErrors(t *testing.T) {
	_, stderr, err := runRoot("inspect")
	require.Error(t, err)
	assert.Contains(t, stderr, "Error:")

	stdout, stderr, err := runRoot("inspect", "not-an-id")
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid identifier")
}

func TestRoot_VersionSubcommand(t *testing.T) {
	// version writes via its own command output, which inherits the root's
	stdout, _, err := runRoot("version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "ulidgen version "))
}
