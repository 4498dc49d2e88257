package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/atlas/internal/core/config"
	"github.com/hay-kot/atlas/internal/core/location"
	"github.com/hay-kot/atlas/internal/core/selection"
)

func testFlags(t *testing.T, records ...location.Record) *Flags {
	t.Helper()

	if len(records) == 0 {
		records = []location.Record{
			{Name: "Paris", Year: 2019, Latitude: 48.8566, Longitude: 2.3522},
			{Name: "Vienna", Year: 2008, Latitude: 48.2082, Longitude: 16.3738},
			{Name: "Madrid", Year: 1999, Latitude: 40.4168, Longitude: -3.7038},
		}
	}

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()

	return &Flags{
		DataDir: cfg.DataDir,
		Config:  &cfg,
		Store:   location.NewStore(records),
	}
}

type registrar interface {
	Register(app *cli.Command) *cli.Command
}

func run(t *testing.T, cmd registrar, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:           "atlas",
		Writer:         &buf,
		ErrWriter:      io.Discard,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	app = cmd.Register(app)

	err := app.Run(context.Background(), append([]string{"atlas"}, args...))
	return buf.String(), err
}

func TestLsCmd_Table(t *testing.T) {
	out, err := run(t, NewLsCmd(testFlags(t)), "ls")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "INDEX")
	assert.Contains(t, lines[1], "Paris")
	assert.Contains(t, lines[2], "48.2082")
	assert.True(t, strings.HasPrefix(lines[3], "2 "))
}

func TestLsCmd_JSON(t *testing.T) {
	out, err := run(t, NewLsCmd(testFlags(t)), "ls", "--json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	var got locationInfo
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &got))
	assert.Equal(t, 1, got.Index)
	assert.Equal(t, "Vienna", got.Name)
	assert.InDelta(t, 16.3738, got.Longitude, 1e-9)
}

func TestLocationsMarkdown(t *testing.T) {
	md := locationsMarkdown([]location.Record{{Name: "Paris", Year: 2019, Latitude: 48.8566, Longitude: 2.3522}})
	assert.Contains(t, md, "| 0 | Paris | 2019 | 48.8566 | 2.3522 |")
}

func TestResolveCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "exact",
			args: []string{"48.2082", "16.3738"},
			want: "1\tVienna (2008)\n",
		},
		{
			name: "rounds to four places",
			args: []string{"48.85660004", "2.35219996"},
			want: "0\tParis (2019)\n",
		},
		{
			name: "not found",
			args: []string{"10", "10"},
			want: "no location found\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, NewResolveCmd(testFlags(t)), append([]string{"resolve"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestResolveCmd_JSON(t *testing.T) {
	out, err := run(t, NewResolveCmd(testFlags(t)), "resolve", "--json", "10", "10")
	require.NoError(t, err)

	var got resolveResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Found)
	assert.Equal(t, selection.NoHighlight, got.Index)
}

func TestResolveCmd_BadArgs(t *testing.T) {
	_, err := run(t, NewResolveCmd(testFlags(t)), "resolve", "48.2")
	require.Error(t, err)

	_, err = run(t, NewResolveCmd(testFlags(t)), "resolve", "north", "16.3")
	require.ErrorContains(t, err, "parse latitude")
}

func decodeInstruction(t *testing.T, out string) selection.Instruction {
	t.Helper()

	var in selection.Instruction
	require.NoError(t, json.Unmarshal([]byte(out), &in))
	return in
}

func decodeSelectResult(t *testing.T, out string) selectResult {
	t.Helper()

	var res selectResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	return res
}

func TestSelectCmd_Index(t *testing.T) {
	out, err := run(t, NewSelectCmd(testFlags(t)), "select", "--index", "1")
	require.NoError(t, err)

	res := decodeSelectResult(t, out)
	assert.True(t, res.Changed)

	in := res.Instruction
	require.NotNil(t, in.Center)
	assert.Equal(t, location.Coordinate{Lat: 48.2082, Lon: 16.3738}, *in.Center)
	assert.Equal(t, []string{"#3b82f6", "#ef4444", "#3b82f6"}, in.MarkerColors)
	assert.Equal(t, 1, in.ListHighlight)
}

func TestSelectCmd_Coordinate(t *testing.T) {
	out, err := run(t, NewSelectCmd(testFlags(t)), "select", "--lat=40.4168", "--lon=-3.7038")
	require.NoError(t, err)

	res := decodeSelectResult(t, out)
	assert.True(t, res.Changed)
	assert.Equal(t, 2, res.ListHighlight)
}

func TestSelectCmd_CoordinateNotFound(t *testing.T) {
	out, err := run(t, NewSelectCmd(testFlags(t)), "select", "--lat=10", "--lon=10")
	require.NoError(t, err)
	assert.Contains(t, out, `"changed": false`)

	res := decodeSelectResult(t, out)
	assert.False(t, res.Changed)

	in := res.Instruction
	assert.Nil(t, in.Center)
	assert.Equal(t, selection.NoHighlight, in.ListHighlight)
	assert.Equal(t, []string{"#3b82f6", "#3b82f6", "#3b82f6"}, in.MarkerColors)
}

func TestSelectCmd_DuplicateResolvesToFirst(t *testing.T) {
	flags := testFlags(t,
		location.Record{Name: "Madrid", Year: 1999, Latitude: 40.4168, Longitude: -3.7038},
		location.Record{Name: "Paris", Year: 2019, Latitude: 48.8566, Longitude: 2.3522},
		location.Record{Name: "Madrid", Year: 2017, Latitude: 40.4168, Longitude: -3.7038},
	)

	out, err := run(t, NewSelectCmd(flags), "select", "--lat=40.4168", "--lon=-3.7038")
	require.NoError(t, err)
	assert.Equal(t, 0, decodeInstruction(t, out).ListHighlight)
}

func TestSelectCmd_InvalidIndex(t *testing.T) {
	_, err := run(t, NewSelectCmd(testFlags(t)), "select", "--index", "3")
	require.ErrorIs(t, err, selection.ErrInvalidIndex)
}

func TestSelectCmd_FlagConflicts(t *testing.T) {
	_, err := run(t, NewSelectCmd(testFlags(t)), "select", "--index", "1", "--lat=1", "--lon=2")
	require.ErrorContains(t, err, "cannot be combined")

	_, err = run(t, NewSelectCmd(testFlags(t)), "select", "--lat=1")
	require.ErrorContains(t, err, "together")
}

func TestSelectCmd_Picker(t *testing.T) {
	cmd := NewSelectCmd(testFlags(t))

	var offered []string
	cmd.pick = func(labels []string) (int, error) {
		offered = labels
		return 2, nil
	}

	out, err := run(t, cmd, "select")
	require.NoError(t, err)
	assert.Equal(t, []string{"Paris (2019)", "Vienna (2008)", "Madrid (1999)"}, offered)
	assert.Equal(t, 2, decodeInstruction(t, out).ListHighlight)
}

func TestSelectCmd_PickerAborted(t *testing.T) {
	cmd := NewSelectCmd(testFlags(t))
	cmd.pick = func([]string) (int, error) { return 0, huh.ErrUserAborted }

	out, err := run(t, cmd, "select")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestShowCmd(t *testing.T) {
	out, err := run(t, NewShowCmd(testFlags(t)), "show", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "# Vienna (2008)")
	assert.Contains(t, out, "**Index:** 1")
	assert.Contains(t, out, "48.2082, 16.3738")
	assert.NotContains(t, out, "Shares its coordinates")
}

func TestShowCmd_Duplicates(t *testing.T) {
	flags := testFlags(t,
		location.Record{Name: "Madrid", Year: 1999, Latitude: 40.4168, Longitude: -3.7038},
		location.Record{Name: "Paris", Year: 2019, Latitude: 48.8566, Longitude: 2.3522},
		location.Record{Name: "Madrid", Year: 2017, Latitude: 40.41681, Longitude: -3.70379},
	)

	out, err := run(t, NewShowCmd(flags), "show", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Shares its coordinates with 0.")
}

func TestShowCmd_InvalidIndex(t *testing.T) {
	_, err := run(t, NewShowCmd(testFlags(t)), "show", "7")
	require.ErrorIs(t, err, selection.ErrInvalidIndex)

	_, err = run(t, NewShowCmd(testFlags(t)), "show", "first")
	require.ErrorContains(t, err, "parse index")
}

func TestConfigValidateCmd_Valid(t *testing.T) {
	out, err := run(t, NewConfigValidateCmd(testFlags(t)), "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestConfigValidateCmd_Invalid(t *testing.T) {
	flags := testFlags(t)
	flags.Config.Markers.DefaultColor = "blueish"

	out, err := run(t, NewConfigValidateCmd(flags), "config", "validate")
	require.Error(t, err)
	assert.Contains(t, out, "markers.default_color")
	assert.NotContains(t, out, "Configuration is valid")
}

func TestConfigValidateCmd_JSON(t *testing.T) {
	flags := testFlags(t)
	flags.Config.Locations.Sources = []string{t.TempDir() + "/*.yaml"}

	out, err := run(t, NewConfigValidateCmd(flags), "config", "validate", "--json")
	require.Error(t, err)

	var got validationReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Valid)
	require.Len(t, got.Errors, 1)
	assert.Contains(t, got.Errors[0].Field, "locations.sources")
	assert.Contains(t, got.Errors[0].Message, "no files match")
}
