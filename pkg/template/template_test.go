package template

import "testing"

func TestTemplateManager_Replace(t *testing.T) {
	type args struct {
		templateValue string
		storage       map[string]interface{}
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{name: "error when nil storage", args: args{
			templateValue: "{{.DB_USER}}",
			storage:       nil,
		}, want: "", wantErr: true},
		{name: "simple string without template value #1", args: args{
			templateValue: "test_db",
			storage:       map[string]interface{}{},
		}, want: "test_db", wantErr: false},
		{name: "simple string without template value #2", args: args{
			templateValue: "test_db",
			storage:       map[string]interface{}{"test_db": "other_db"},
		}, want: "test_db", wantErr: false},
		{name: "simple string with missing template value in storage", args: args{
			templateValue: "mysql://{{.DB_USER}}@127.0.0.1:3306/test_db",
			storage:       map[string]interface{}{},
		}, want: "", wantErr: true},
		{name: "simple string with template value", args: args{
			templateValue: "mysql://{{.DB_USER}}@127.0.0.1:3306/test_db",
			storage:       map[string]interface{}{"DB_USER": "root"},
		}, want: "mysql://root@127.0.0.1:3306/test_db", wantErr: false},
		{name: "missing at least one template value in storage #1", args: args{
			templateValue: "host is {{.DB_HOST}}",
			storage:       map[string]interface{}{"DB_PORT": 5432},
		}, want: "", wantErr: true},
		{name: "missing at least one template value in storage #2", args: args{
			templateValue: "{{.DB_HOST}}:{{.DB_PORT}}",
			storage:       map[string]interface{}{"DB_HOST": "127.0.0.1"},
		}, want: "", wantErr: true},
		{name: "multi template string #1", args: args{
			templateValue: "{{.DB_HOST}}:{{.DB_PORT}}",
			storage:       map[string]interface{}{"DB_HOST": "127.0.0.1", "DB_PORT": "5432"},
		}, want: "127.0.0.1:5432", wantErr: false},
		{name: "multi template string #2", args: args{
			templateValue: "{{.IS_REPLICA}} replica on port {{.DB_PORT}}",
			storage:       map[string]interface{}{"IS_REPLICA": true, "DB_PORT": 5433},
		}, want: "true replica on port 5433", wantErr: false},
		{name: "key with dot #1", args: args{
			templateValue: "{{.PG_DSN.Host}}",
			storage:       map[string]interface{}{"PG_DSN": map[string]string{"Host": "127.0.0.1"}},
		}, want: "127.0.0.1", wantErr: false},
		{name: "key with dot #2", args: args{
			templateValue: "{{.PG_DSN.Host}}",
			storage: map[string]interface{}{"PG_DSN": struct {
				Host string
			}{Host: "127.0.0.1"}},
		}, want: "127.0.0.1", wantErr: false},
		{name: "key with dot #3", args: args{
			templateValue: "{{.PG_DSN.Database}}",
			storage: map[string]interface{}{"PG_DSN": struct {
				Database string
			}{Database: "test_db"}},
		}, want: "test_db", wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := TemplateManager{}
			got, err := tm.Replace(tt.args.templateValue, tt.args.storage)
			if (err != nil) != tt.wantErr {
				t.Errorf("Replace() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Replace() got = %v, want %v", got, tt.want)
			}
		})
	}
}
