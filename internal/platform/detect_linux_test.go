//go:build linux

package platform

import "testing"

func TestDetect_ProtocolSelection(t *testing.T) {
	tests := []struct {
		name           string
		sessionType    string
		waylandDisplay string
		display        string
		wantProbe      string
	}{
		{
			name:        "x11 session",
			sessionType: "x11",
			display:     ":0",
			wantProbe:   "x11",
		},
		{
			name:      "display only",
			display:   ":1",
			wantProbe: "x11",
		},
		{
			name:           "xwayland session",
			sessionType:    "wayland",
			waylandDisplay: "wayland-0",
			display:        ":0",
			wantProbe:      "x11",
		},
		{
			name:           "pure wayland session",
			sessionType:    "wayland",
			waylandDisplay: "wayland-0",
			wantProbe:      "unsupported",
		},
		{
			name:           "wayland socket without session type",
			waylandDisplay: "wayland-1",
			wantProbe:      "unsupported",
		},
		{
			name:      "headless",
			wantProbe: "unsupported",
		},
		{
			name:        "x11 session without display variable",
			sessionType: "x11",
			wantProbe:   "x11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_SESSION_TYPE", tt.sessionType)
			t.Setenv("WAYLAND_DISPLAY", tt.waylandDisplay)
			t.Setenv("DISPLAY", tt.display)

			probe := Detect()
			if probe.Name() != tt.wantProbe {
				t.Fatalf("expected probe %q, got %q", tt.wantProbe, probe.Name())
			}
		})
	}
}

func TestActiveProtocol(t *testing.T) {
	tests := []struct {
		name           string
		sessionType    string
		waylandDisplay string
		display        string
		want           protocol
	}{
		{name: "explicit x11", sessionType: "X11", want: protocolX11},
		{name: "explicit wayland", sessionType: "Wayland", want: protocolWayland},
		{name: "wayland socket", waylandDisplay: "wayland-0", want: protocolWayland},
		{name: "x socket", display: ":0", want: protocolX11},
		{name: "nothing", want: protocolUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_SESSION_TYPE", tt.sessionType)
			t.Setenv("WAYLAND_DISPLAY", tt.waylandDisplay)
			t.Setenv("DISPLAY", tt.display)

			if got := activeProtocol(); got != tt.want {
				t.Fatalf("expected protocol %d, got %d", tt.want, got)
			}
		})
	}
}
