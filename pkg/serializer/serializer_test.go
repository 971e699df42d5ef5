package serializer

import (
	"reflect"
	"testing"
)

type connectionDetails struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Database string `json:"database" yaml:"database"`
}

func TestJSON_SerializeAndDeserialize(t *testing.T) {
	details := connectionDetails{Host: "127.0.0.1", Port: 5432, Database: "test_db"}

	s := NewJSONFormatter()

	data, err := s.Serialize(details)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	expected := `{"host":"127.0.0.1","port":5432,"database":"test_db"}`
	if string(data) != expected {
		t.Errorf("Serialize() = %s, want %s", data, expected)
	}

	var got connectionDetails
	if err := s.Deserialize(data, &got); err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}

	if !reflect.DeepEqual(got, details) {
		t.Errorf("Deserialize() = %+v, want %+v", got, details)
	}
}

func TestYAML_Deserialize(t *testing.T) {
	type args struct {
		data []byte
	}
	tests := []struct {
		name    string
		args    args
		want    connectionDetails
		wantErr bool
	}{
		{name: "nil data", args: args{data: nil}, wantErr: true},
		{name: "empty data", args: args{data: []byte("")}, wantErr: true},
		{name: "data in JSON format", args: args{data: []byte(`{"host": "127.0.0.1"}`)}, wantErr: true},
		{name: "data in YAML format", args: args{data: []byte(`
host: 127.0.0.1
port: 3306
database: test_db
`)}, want: connectionDetails{Host: "127.0.0.1", Port: 3306, Database: "test_db"}, wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewYAMLFormatter()

			var got connectionDetails
			err := s.Deserialize(tt.args.data, &got)
			if (err != nil) != tt.wantErr {
				t.Errorf("Deserialize() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Deserialize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestYAML_Serialize(t *testing.T) {
	s := NewYAMLFormatter()

	data, err := s.Serialize(connectionDetails{Host: "127.0.0.1", Port: 5432, Database: "test_db"})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	expected := "host: 127.0.0.1\nport: 5432\ndatabase: test_db\n"
	if string(data) != expected {
		t.Errorf("Serialize() = %q, want %q", data, expected)
	}
}
