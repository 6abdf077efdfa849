package media

import "testing"

const sampleProbeJSON = `{
	"streams": [
		{"codec_type": "audio", "channels": 2},
		{"codec_type": "video", "width": 640, "height": 360, "disposition": {"attached_pic": 1}},
		{"codec_type": "video", "width": 1280, "height": 720, "disposition": {"attached_pic": 0}}
	],
	"format": {"duration": "200.040000"}
}`

func TestParseProbeJSON(t *testing.T) {
	clip, err := ParseProbeJSON([]byte(sampleProbeJSON))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if clip.Width != 1280 || clip.Height != 720 {
		t.Errorf("expected 1280x720 (first non-cover video stream), got %dx%d", clip.Width, clip.Height)
	}

	if clip.Duration < 200.03 || clip.Duration > 200.05 {
		t.Errorf("expected duration ~200.04, got %f", clip.Duration)
	}
}

func TestParseProbeJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "invalid JSON",
			data: "not json",
		},
		{
			name: "no video stream",
			data: `{"streams": [{"codec_type": "audio"}], "format": {"duration": "10"}}`,
		},
		{
			name: "only cover art stream",
			data: `{"streams": [{"codec_type": "video", "width": 600, "height": 600,
				"disposition": {"attached_pic": 1}}], "format": {"duration": "10"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseProbeJSON([]byte(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
