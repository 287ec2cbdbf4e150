package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	daemon "github.com/andrescamacho/craftsolver-go/internal/adapters/grpc"
	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
)

// dialDaemon is swapped in tests to reach an in-process daemon
var dialDaemon = func() (*daemon.DaemonClient, error) {
	return daemon.NewDaemonClient(socketPath)
}

// withDaemon connects to the daemon and runs fn under a timeout
func withDaemon(timeout time.Duration, fn func(ctx context.Context, client *daemon.DaemonClient) error) error {
	client, err := dialDaemon()
	if err != nil {
		return fmt.Errorf("failed to connect to daemon: %w", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return describeError(fn(ctx, client))
}

// describeError turns gRPC status errors into plain CLI messages
func describeError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unavailable:
		return fmt.Errorf("daemon not reachable at %s (is craftsolver-daemon running?)", socketPath)
	case codes.InvalidArgument:
		return fmt.Errorf("invalid request: %s", st.Message())
	case codes.NotFound, codes.AlreadyExists:
		return fmt.Errorf("%s", st.Message())
	case codes.DeadlineExceeded:
		return fmt.Errorf("timed out waiting for daemon; raise --timeout for large solver builds")
	}
	return fmt.Errorf("daemon error (%s): %s", st.Code(), st.Message())
}

// loadStatus reads a crafting status from a JSON file. path is a gjson path
// selecting the status inside the document; when empty, a top-level "status"
// member is used if present, otherwise the whole document.
func loadStatus(file, path string) (crafting.Status, error) {
	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return crafting.Status{}, fmt.Errorf("failed to read status file: %w", err)
	}
	return parseStatus(data, path)
}

func parseStatus(data []byte, path string) (crafting.Status, error) {
	if !gjson.ValidBytes(data) {
		return crafting.Status{}, fmt.Errorf("status file is not valid JSON")
	}

	var result gjson.Result
	switch {
	case path != "":
		result = gjson.GetBytes(data, path)
		if !result.Exists() {
			return crafting.Status{}, fmt.Errorf("no value at path %q", path)
		}
	case gjson.GetBytes(data, "status").IsObject():
		result = gjson.GetBytes(data, "status")
	default:
		result = gjson.ParseBytes(data)
	}
	if !result.IsObject() {
		return crafting.Status{}, fmt.Errorf("status must be a JSON object")
	}

	var s crafting.Status
	if err := json.Unmarshal([]byte(result.Raw), &s); err != nil {
		return crafting.Status{}, fmt.Errorf("failed to decode status: %w", err)
	}
	return s, nil
}

// printJSON writes v as indented JSON
func printJSON(out io.Writer, v interface{}) error {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(bytes))
	return err
}

// joinActions renders a rotation on one line
func joinActions(actions []crafting.Action) string {
	if len(actions) == 0 {
		return "(none)"
	}
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return strings.Join(names, " → ")
}
