package matrix_test

import (
	"testing"

	"sppd-activity/internal/matrix"
)

func TestEncodeCell(t *testing.T) {
	tests := []struct {
		name string
		in   matrix.CellFields
		want string
	}{
		{
			name: "all fields",
			in:   matrix.CellFields{Summary: "Rapat", Location: "Aula", Time: "09:00", Disposition: "Camat"},
			want: "Rapat|Aula|09:00|Camat",
		},
		{
			name: "placeholder only for summary",
			in:   matrix.CellFields{Time: "09:00"},
			want: "Kegiatan||09:00|",
		},
		{
			name: "blank summary",
			in:   matrix.CellFields{Summary: "   ", Location: "Kantor Camat"},
			want: "Kegiatan|Kantor Camat||",
		},
		{
			name: "delimiter is not escaped",
			in:   matrix.CellFields{Summary: "Rapat A|B", Location: "Aula", Time: "09:00"},
			want: "Rapat A|B|Aula|09:00|",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matrix.EncodeCell(tt.in); got != tt.want {
				t.Errorf("EncodeCell() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeCell(t *testing.T) {
	got := matrix.DecodeCell("Rapat|Aula|09:00|Camat")
	want := matrix.CellFields{Summary: "Rapat", Location: "Aula", Time: "09:00", Disposition: "Camat"}
	if got != want {
		t.Errorf("DecodeCell() = %+v, want %+v", got, want)
	}

	got = matrix.DecodeCell("Rapat A|B|Aula|09:00|")
	if got.Summary != "Rapat A|B" || got.Location != "Aula" || got.Disposition != "" {
		t.Errorf("extra separators should stay in the summary, got %+v", got)
	}

	got = matrix.DecodeCell("catatan manual")
	if got.Summary != "catatan manual" || got.Time != "" {
		t.Errorf("free text should decode as summary, got %+v", got)
	}
}
