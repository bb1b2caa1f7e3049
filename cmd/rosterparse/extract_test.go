package main_test

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/rosterparse"
	main "github.com/fwojciec/rosterparse/cmd/rosterparse"
	"github.com/fwojciec/rosterparse/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes snapshot HTML to the extractor", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &stdout,
			Snapshots: &mock.SnapshotReader{
				ReadSnapshotFn: func(ctx context.Context, path string) (*rosterparse.Snapshot, error) {
					return &rosterparse.Snapshot{Path: path, HTML: "<html>" + path + "</html>"}, nil
				},
			},
			Extractor: &mock.RosterExtractor{
				ExtractRosterFn: func(html string) (*rosterparse.Roster, error) {
					return &rosterparse.Roster{Players: []rosterparse.Player{
						{Name: html, Role: rosterparse.RoleBatter, Team: "T"},
					}}, nil
				},
			},
		}

		cmd := &main.ExtractCmd{Files: []string{"week1.html", "week2.html"}, Concurrency: 2}
		err := cmd.Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, `"name": "<html>week1.html</html>"`)
		assert.Less(t, bytes.Index(stdout.Bytes(), []byte("week1")), bytes.Index(stdout.Bytes(), []byte("week2")))
	})

	t.Run("reads default file when none given", func(t *testing.T) {
		t.Parallel()

		var read []string
		var stdout bytes.Buffer
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &stdout,
			Snapshots: &mock.SnapshotReader{
				ReadSnapshotFn: func(ctx context.Context, path string) (*rosterparse.Snapshot, error) {
					read = append(read, path)
					return &rosterparse.Snapshot{Path: path}, nil
				},
			},
			Extractor: &mock.RosterExtractor{
				ExtractRosterFn: func(html string) (*rosterparse.Roster, error) {
					return rosterparse.NewRoster(), nil
				},
			},
		}

		cmd := &main.ExtractCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{main.DefaultFile}, read)
		assert.Equal(t, "{\n  \"players\": []\n}\n", stdout.String())
	})

	t.Run("returns extractor error and skips output", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		var extracted atomic.Int32
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &stdout,
			Snapshots: &mock.SnapshotReader{
				ReadSnapshotFn: func(ctx context.Context, path string) (*rosterparse.Snapshot, error) {
					return &rosterparse.Snapshot{Path: path, HTML: path}, nil
				},
			},
			Extractor: &mock.RosterExtractor{
				ExtractRosterFn: func(html string) (*rosterparse.Roster, error) {
					extracted.Add(1)
					if html == "bad.html" {
						return nil, rosterparse.Errorf(rosterparse.EINVALID, "failed to parse HTML")
					}
					return rosterparse.NewRoster(), nil
				},
			},
		}

		cmd := &main.ExtractCmd{Files: []string{"good.html", "bad.html"}, Concurrency: 1}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, rosterparse.EINVALID, rosterparse.ErrorCode(err))
		assert.Contains(t, err.Error(), "bad.html")
		assert.Empty(t, stdout.String())
		assert.Equal(t, int32(2), extracted.Load())
	})

	t.Run("stops reading after cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var stdout bytes.Buffer
		deps := &main.Dependencies{
			Ctx:    ctx,
			Stdout: &stdout,
			Snapshots: &mock.SnapshotReader{
				ReadSnapshotFn: func(ctx context.Context, path string) (*rosterparse.Snapshot, error) {
					return nil, ctx.Err()
				},
			},
			Extractor: &mock.RosterExtractor{
				ExtractRosterFn: func(html string) (*rosterparse.Roster, error) {
					return nil, errors.New("unexpected call")
				},
			},
		}

		cmd := &main.ExtractCmd{Files: []string{"a.html"}}
		err := cmd.Run(deps)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, stdout.String())
	})
}

func TestEncodeRoster(t *testing.T) {
	t.Parallel()

	data, err := main.EncodeRoster(&rosterparse.Roster{Players: []rosterparse.Player{
		{Name: "A <b>", Role: rosterparse.RoleBatter, Team: "X & Y"},
	}})

	require.NoError(t, err)
	assert.Equal(t, `{
  "players": [
    {
      "name": "A <b>",
      "role": "Batter",
      "team": "X & Y"
    }
  ]
}
`, string(data))
}
