package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/pawelWritesCode/dsnutils/pkg/validator"
)

type mockedFileValidator struct {
	mock.Mock
}

type mockedUrlValidator struct {
	mock.Mock
}

func (m *mockedFileValidator) Validate(in any) error {
	args := m.Called(in)

	return args.Error(0)
}

func (m *mockedUrlValidator) Validate(in any) error {
	args := m.Called(in)

	return args.Error(0)
}

func TestGetSource(t *testing.T) {
	type fields struct {
		fileValidator validator.Validator
		urlValidator  validator.Validator
		schemasDir    string
		mockFunc      func()
	}
	type args struct {
		rawSource string
	}

	mFileValidator := new(mockedFileValidator)
	mUrlValidator := new(mockedUrlValidator)

	tests := []struct {
		name    string
		fields  fields
		args    args
		want    string
		wantErr bool
	}{
		{name: "is empty string", fields: fields{
			fileValidator: mFileValidator,
			urlValidator:  mUrlValidator,
			schemasDir:    "",
			mockFunc: func() {

			},
		}, args: args{rawSource: ""}, want: "", wantErr: true},
		{name: "is not valid URL and is not valid path", fields: fields{
			fileValidator: mFileValidator,
			urlValidator:  mUrlValidator,
			schemasDir:    "",
			mockFunc: func() {
				mUrlValidator.On("Validate", "/json_schema").Return(errors.New("a")).Once()
				mFileValidator.On("Validate", "/json_schema").Return(errors.New("b")).Once()
			},
		}, args: args{rawSource: "/json_schema"}, want: "", wantErr: true},
		{name: "is valid URL", fields: fields{
			fileValidator: mFileValidator,
			urlValidator:  mUrlValidator,
			schemasDir:    "",
			mockFunc: func() {
				mUrlValidator.On("Validate", "www.json-schema.org/dsn.json").Return(nil).Once()
				mFileValidator.On("Validate", "www.json-schema.org/dsn.json").Return(errors.New("b")).Once()
			},
		}, args: args{rawSource: "www.json-schema.org/dsn.json"}, want: "www.json-schema.org/dsn.json", wantErr: false},
		{name: "is valid absolute path on user OS", fields: fields{
			fileValidator: mFileValidator,
			urlValidator:  mUrlValidator,
			schemasDir:    "",
			mockFunc: func() {
				mUrlValidator.On("Validate", "/schemas/dsn.json").Return(errors.New("a")).Once()
				mFileValidator.On("Validate", "/schemas/dsn.json").Return(nil).Once()
			},
		}, args: args{rawSource: "/schemas/dsn.json"}, want: "file:///schemas/dsn.json", wantErr: false},
		{name: "is valid relative path on user OS", fields: fields{
			fileValidator: mFileValidator,
			urlValidator:  mUrlValidator,
			schemasDir:    "/schemas",
			mockFunc: func() {
				mUrlValidator.On("Validate", "dsn.json").Return(errors.New("a")).Once()
				mFileValidator.On("Validate", "/schemas/dsn.json").Return(nil).Once()
			},
		}, args: args{rawSource: "dsn.json"}, want: "file:///schemas/dsn.json", wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields.mockFunc()

			got, err := getSource(tt.fields.urlValidator, tt.fields.fileValidator, tt.fields.schemasDir, tt.args.rawSource)
			if (err != nil) != tt.wantErr {
				t.Errorf("getSource() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("getSource() got = %v, want %v", got, tt.want)
			}
		})
	}
}

// Both engines must partition legal and illegal documents identically
// when given field definitions built from the same specification.
func TestEnginesAgreeOnFieldDefinitions(t *testing.T) {
	document, err := BuildDocument("dsn", DSNFields())
	if err != nil {
		t.Fatalf("BuildDocument() error = %v", err)
	}

	legal := []string{
		`{"scheme": "postgresql", "user": "postgres", "password": "pass", "host": "127.0.0.1", "port": 5432, "database": "test_db"}`,
		`{"scheme": "mysql", "user": "root", "password": "", "host": "127.0.0.1", "port": 3306, "database": "test_db"}`,
		`{"scheme": "mariadb", "user": "reader", "password": "secret", "host": "db.local", "port": 1, "database": "reports"}`,
	}

	illegal := []string{
		`{"scheme": "postgresql", "user": "postgres", "host": "127.0.0.1", "port": "5432", "database": "test_db"}`,
		`{"scheme": "postgresql", "user": "postgres", "port": 5432, "database": "test_db"}`,
		`{"scheme": "", "user": "root", "host": "127.0.0.1", "port": 3306, "database": "test_db"}`,
		`{"scheme": "mysql", "user": "root", "host": "127.0.0.1", "port": 72000, "database": "test_db"}`,
		`{"scheme": "mysql", "user": "root", "host": "127.0.0.1", "port": 3306}`,
	}

	for _, engine := range []Engine{EngineXG, EngineQI} {
		rawValidator, err := NewRawValidator(engine)
		if err != nil {
			t.Fatalf("NewRawValidator(%s) error = %v", engine, err)
		}

		for _, doc := range legal {
			if err := rawValidator.Validate(doc, document); err != nil {
				t.Errorf("engine %s rejected legal document %s, err: %v", engine, doc, err)
			}
		}

		for _, doc := range illegal {
			if err := rawValidator.Validate(doc, document); err == nil {
				t.Errorf("engine %s accepted illegal document %s", engine, doc)
			}
		}
	}
}

func TestRawValidatorsAcceptYAMLSchema(t *testing.T) {
	yamlSchema := `
type: object
properties:
  host:
    type: string
  port:
    type: integer
required:
  - host
`

	for _, engine := range []Engine{EngineXG, EngineQI} {
		rawValidator, err := NewRawValidator(engine)
		if err != nil {
			t.Fatalf("NewRawValidator(%s) error = %v", engine, err)
		}

		if err := rawValidator.Validate(`{"host": "127.0.0.1", "port": 5432}`, yamlSchema); err != nil {
			t.Errorf("engine %s rejected legal document against YAML schema, err: %v", engine, err)
		}

		if err := rawValidator.Validate(`{"port": 5432}`, yamlSchema); err == nil {
			t.Errorf("engine %s accepted illegal document against YAML schema", engine)
		}
	}
}
