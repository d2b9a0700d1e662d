package flex_test

import (
	"testing"
	"time"

	"github.com/foxzool/qweather-sdk/flex"
	"github.com/foxzool/qweather-sdk/jsonutil"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "quoted integer", input: `"37"`, want: 37},
		{name: "native integer", input: `37`, want: 37},
		{name: "native float", input: `37.0`, want: 37},
		{name: "quoted float", input: `"0.15"`, want: 0.15},
		{name: "quoted negative", input: `"-1"`, want: -1},
		{name: "empty string", input: `""`, wantErr: true},
		{name: "null", input: `null`, wantErr: true},
		{name: "garbage string", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f flex.Float
			err := jsonutil.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected decode error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Float64() != tt.want {
				t.Fatalf("got %v, want %v", f.Float64(), tt.want)
			}
		})
	}
}

func TestFloatFieldsCoerceIdentically(t *testing.T) {
	type payload struct {
		Temp flex.Float `json:"temp"`
	}

	for _, body := range []string{`{"temp":"37"}`, `{"temp":37}`, `{"temp":37.0}`} {
		var p payload
		if err := jsonutil.Unmarshal([]byte(body), &p); err != nil {
			t.Fatalf("decode %s: %v", body, err)
		}
		if p.Temp.Float64() != 37 {
			t.Fatalf("decode %s: got %v, want 37", body, p.Temp.Float64())
		}
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "quoted", input: `"10"`, want: 10},
		{name: "native", input: `10`, want: 10},
		{name: "integral float", input: `"37.0"`, want: 37},
		{name: "fractional", input: `"3.5"`, wantErr: true},
		{name: "empty string", input: `""`, wantErr: true},
		{name: "null", input: `null`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var i flex.Int
			err := jsonutil.Unmarshal([]byte(tt.input), &i)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected decode error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if i.Int64() != tt.want {
				t.Fatalf("got %d, want %d", i.Int64(), tt.want)
			}
		})
	}
}

func TestNullFloat(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      float64
		wantValid bool
		wantErr   bool
	}{
		{name: "present quoted", input: `"21"`, want: 21, wantValid: true},
		{name: "present native", input: `21.5`, want: 21.5, wantValid: true},
		{name: "empty string", input: `""`},
		{name: "null", input: `null`},
		{name: "garbage", input: `"x"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n flex.NullFloat
			err := jsonutil.Unmarshal([]byte(tt.input), &n)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected decode error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.Valid != tt.wantValid {
				t.Fatalf("valid = %v, want %v", n.Valid, tt.wantValid)
			}
			if n.Valid && n.Float64 != tt.want {
				t.Fatalf("got %v, want %v", n.Float64, tt.want)
			}
		})
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr bool
	}{
		{name: "native true", input: `true`, want: true},
		{name: "native false", input: `false`, want: false},
		{name: "quoted true", input: `"true"`, want: true},
		{name: "quoted upper", input: `"TRUE"`, want: true},
		{name: "quoted zero", input: `"0"`, want: false},
		{name: "quoted one", input: `"1"`, want: true},
		{name: "native one", input: `1`, want: true},
		{name: "native zero", input: `0`, want: false},
		{name: "garbage", input: `"maybe"`, wantErr: true},
		{name: "null", input: `null`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b flex.Bool
			err := jsonutil.Unmarshal([]byte(tt.input), &b)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected decode error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.Bool() != tt.want {
				t.Fatalf("got %v, want %v", b.Bool(), tt.want)
			}
		})
	}
}

func TestTime(t *testing.T) {
	t.Run("minute precision with offset", func(t *testing.T) {
		var ts flex.Time
		if err := jsonutil.Unmarshal([]byte(`"2020-06-30T22:00+08:00"`), &ts); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ts.Hour() != 22 || ts.Minute() != 0 {
			t.Fatalf("got %v", ts.Time)
		}
		_, offset := ts.Zone()
		if offset != 8*3600 {
			t.Fatalf("offset = %d, want +08:00", offset)
		}
	})

	t.Run("full ISO 8601", func(t *testing.T) {
		var ts flex.Time
		if err := jsonutil.Unmarshal([]byte(`"2023-02-20T15:34:10Z"`), &ts); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ts.Second() != 10 {
			t.Fatalf("got %v", ts.Time)
		}
	})

	t.Run("empty string", func(t *testing.T) {
		var ts flex.Time
		if err := jsonutil.Unmarshal([]byte(`""`), &ts); err == nil {
			t.Fatal("expected decode error")
		}
	})
}

func TestNullTime(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		var nt flex.NullTime
		if err := jsonutil.Unmarshal([]byte(`"2023-04-03T10:30+08:00"`), &nt); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !nt.Valid {
			t.Fatal("expected valid time")
		}
	})

	t.Run("empty string", func(t *testing.T) {
		var nt flex.NullTime
		if err := jsonutil.Unmarshal([]byte(`""`), &nt); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if nt.Valid {
			t.Fatal("expected invalid time")
		}
	})
}

func TestDate(t *testing.T) {
	var d flex.Date
	if err := jsonutil.Unmarshal([]byte(`"2021-11-15"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2021, 11, 15, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Fatalf("got %v, want %v", d.Time, want)
	}

	if err := jsonutil.Unmarshal([]byte(`"15/11/2021"`), &d); err == nil {
		t.Fatal("expected decode error for non-ISO date")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	type sample struct {
		Temp  flex.Float     `json:"temp"`
		Cloud flex.NullFloat `json:"cloud"`
		IsDst flex.Bool      `json:"isDst"`
	}

	data, err := jsonutil.Marshal(sample{Temp: 24, IsDst: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := string(data), `{"temp":24,"cloud":null,"isDst":true}`; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}
