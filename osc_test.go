package vt100

import "testing"

type recordingRenderer struct {
	title        string
	notified     bool
	notifyTitle  string
	notifyBody   string
	clipSelector byte
	clipData     string
	tppKind      string
	tppPayload   []byte
}

func (r *recordingRenderer) OnTitleChange(title string) { r.title = title }
func (r *recordingRenderer) OnNotification(title, body string) {
	r.notified = true
	r.notifyTitle, r.notifyBody = title, body
}
func (r *recordingRenderer) OnClipboardSetRequest(selector byte, data string) {
	r.clipSelector, r.clipData = selector, data
}
func (r *recordingRenderer) OnTppSequence(kind string, payload []byte) {
	r.tppKind, r.tppPayload = kind, payload
}

var _ Renderer = (*recordingRenderer)(nil)

func TestOSCTitleChange(t *testing.T) {
	rec := &recordingRenderer{}
	term := New(10, 3, WithRenderer(rec))
	term.ProcessInput([]byte("\x1b]0;my title\x07"))
	if rec.title != "my title" {
		t.Errorf("title = %q, want %q", rec.title, "my title")
	}
}

func TestOSCClipboardWrite(t *testing.T) {
	rec := &recordingRenderer{}
	term := New(10, 3, WithRenderer(rec))
	term.ProcessInput([]byte("\x1b]52;c;aGVsbG8=\x07"))
	if rec.clipSelector != 'c' || rec.clipData != "aGVsbG8=" {
		t.Errorf("clipboard write = (%q,%q), want ('c', %q)", rec.clipSelector, rec.clipData, "aGVsbG8=")
	}
}

func TestBELTriggersNotification(t *testing.T) {
	rec := &recordingRenderer{}
	term := New(10, 3, WithRenderer(rec))
	term.ProcessInput([]byte("\x07"))
	if !rec.notified {
		t.Errorf("expected BEL to trigger a notification callback")
	}
}

func TestTppCapabilitiesRepliesDirectly(t *testing.T) {
	sink := &capturePTY{}
	term := New(10, 3, WithPTY(sink))
	term.ProcessInput([]byte("\x1bP+Capabilities;\x07"))
	if len(sink.sent) != 1 {
		t.Fatalf("expected one reply, got %d", len(sink.sent))
	}
	if string(sink.sent[0]) != "\x1bP+Capabilities;0\a" {
		t.Errorf("reply = %q, want %q", sink.sent[0], "\x1bP+Capabilities;0\a")
	}
}

func TestTppOtherKindForwardedToRenderer(t *testing.T) {
	rec := &recordingRenderer{}
	term := New(10, 3, WithRenderer(rec))
	term.ProcessInput([]byte("\x1bP+Open;payload\x07"))
	if rec.tppKind != "Open" {
		t.Errorf("tpp kind = %q, want %q", rec.tppKind, "Open")
	}
	if string(rec.tppPayload) != "payload" {
		t.Errorf("tpp payload = %q, want %q", rec.tppPayload, "payload")
	}
}
