package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/crucial707/hci-inventory/cmd/cli/config"
)

// captureOutput helps capture stdout during command execution.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func withServer(t *testing.T, h http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	prev := config.Current
	config.Current = config.Settings{APIURL: srv.URL}
	t.Cleanup(func() { config.Current = prev })
}

func TestListAssets_TableOutput(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/assets" || r.URL.Query().Get("company_id") != "c1" || r.URL.Query().Get("type") != "hardware" {
			t.Errorf("unexpected request: %s", r.URL)
		}
		_, _ = io.WriteString(w, `{"success":true,"data":[
 {"id":"a1","company_id":"c1","name":"laptop-1","type":"hardware","status":"active","identifier":"SN-1","metadata":{},"assigned_to":null},
 {"id":"a2","company_id":"c1","name":"laptop-2","type":"hardware","status":"maintenance","identifier":null,"metadata":{},"assigned_to":"u1"}
],"meta":{"total":2,"limit":50,"offset":0,"page":1}}`)
	})

	cmd := listAssetsCmd()
	cmd.SetArgs([]string{"--company", "c1", "--type", "hardware"})
	var err error
	out := captureOutput(t, func() {
		err = cmd.ExecuteContext(context.Background())
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if !strings.Contains(out, "laptop-1") || !strings.Contains(out, "laptop-2") || !strings.Contains(out, "SN-1") {
		t.Fatalf("expected asset names in output, got: %s", out)
	}
}

func TestCreateAsset_Metadata(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&body)
		if string(body["metadata"]) != `{"cpu":"m3"}` || string(body["company_id"]) != `"c1"` {
			t.Errorf("unexpected body: %v", body)
		}
		if _, ok := body["identifier"]; ok {
			t.Errorf("empty identifier should be omitted")
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"success":true,"data":{"id":"a1","company_id":"c1","name":"laptop","type":"hardware","status":"active","metadata":{"cpu":"m3"}}}`)
	})

	cmd := createAssetCmd()
	cmd.SetArgs([]string{"--company", "c1", "--name", "laptop", "--type", "hardware", "--metadata", `{"cpu":"m3"}`})
	var err error
	captureOutput(t, func() {
		err = cmd.ExecuteContext(context.Background())
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
}

func TestCreateAsset_InvalidMetadata(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request should not be sent")
	})

	cmd := createAssetCmd()
	cmd.SetArgs([]string{"--company", "c1", "--name", "laptop", "--type", "hardware", "--metadata", `{bad`})
	cmd.SilenceUsage = true
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected error for invalid metadata")
	}
}

func TestUpdateAsset_Unassign(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if r.Method != http.MethodPatch || string(raw) != `{"assigned_to":null,"status":"disposed"}` {
			t.Errorf("unexpected request: %s %s", r.Method, raw)
		}
		_, _ = io.WriteString(w, `{"success":true,"data":{"id":"a1","company_id":"c1","name":"laptop","type":"hardware","status":"disposed"}}`)
	})

	cmd := updateAssetCmd()
	cmd.SetArgs([]string{"a1", "--unassign", "--status", "disposed"})
	var err error
	out := captureOutput(t, func() {
		err = cmd.ExecuteContext(context.Background())
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !strings.Contains(out, "disposed") {
		t.Errorf("expected status in output, got: %s", out)
	}
}
