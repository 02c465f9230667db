package ipc

import (
	"encoding/json"
	"testing"
)

func TestParseRequestRoundTrip(t *testing.T) {
	payload, err := json.Marshal(RunCommandPayload{Commands: []string{"set_tiling"}, Subject: 7})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	data, err := json.Marshal(Request{Kind: RequestRunCommand, Payload: payload})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req, err := ParseRequest(data)
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if req.Kind != RequestRunCommand {
		t.Fatalf("Kind = %v, want RequestRunCommand", req.Kind)
	}

	var p RunCommandPayload
	if err := json.Unmarshal(req.Payload, &p); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if len(p.Commands) != 1 || p.Commands[0] != "set_tiling" || p.Subject != 7 {
		t.Fatalf("payload = %+v, want Commands=[set_tiling] Subject=7", p)
	}
}

func TestParseRequestRejectsGarbage(t *testing.T) {
	if _, err := ParseRequest([]byte("not json")); err == nil {
		t.Fatal("ParseRequest(garbage) succeeded, want error")
	}
}

func TestNewOKResponseMarshalsData(t *testing.T) {
	resp, err := NewOKResponse(RunCommandData{Subject: 3})
	if err != nil {
		t.Fatalf("NewOKResponse: %v", err)
	}
	if resp.Status != "OK" {
		t.Fatalf("Status = %q, want OK", resp.Status)
	}

	var data RunCommandData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if data.Subject != 3 {
		t.Fatalf("Subject = %d, want 3", data.Subject)
	}
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse("boom")
	if resp.Status != "ERROR" || resp.Error != "boom" {
		t.Fatalf("resp = %+v, want Status=ERROR Error=boom", resp)
	}
}

func TestResponseMarshalRoundTrip(t *testing.T) {
	resp, err := NewOKResponse(nil)
	if err != nil {
		t.Fatalf("NewOKResponse: %v", err)
	}
	data, err := resp.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded Response
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Status != "OK" {
		t.Fatalf("Status = %q, want OK", decoded.Status)
	}
}
