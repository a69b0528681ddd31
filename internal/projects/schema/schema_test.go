package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inayah-hub/DASHBOARDS/internal/projects/domain"
)

func TestParseInsert_Valid(t *testing.T) {
	t.Run("applies default status", func(t *testing.T) {
		res := ParseInsert([]byte(`{"clientName":"Acme Corp","projectNo":"P-101","media":"Video"}`))
		require.True(t, res.OK())
		assert.Equal(t, domain.NewProject{
			ClientName: "Acme Corp",
			ProjectNo:  "P-101",
			Media:      "Video",
			Status:     domain.StatusInProgress,
		}, res.Value)
	})

	t.Run("keeps supplied status", func(t *testing.T) {
		res := ParseInsert([]byte(`{"clientName":"Globex","projectNo":"P-102","media":"Web","status":"Completed"}`))
		require.True(t, res.OK())
		assert.Equal(t, domain.StatusCompleted, res.Value.Status)
	})

	t.Run("null status is rejected rather than defaulted", func(t *testing.T) {
		res := ParseInsert([]byte(`{"clientName":"Globex","projectNo":"P-102","media":"Web","status":null}`))
		require.False(t, res.OK())
		assert.Equal(t, FieldStatus, res.Err.Field)
		assert.Equal(t, "Expected string", res.Err.Message)
	})

	t.Run("accepts values outside the known enumerations", func(t *testing.T) {
		res := ParseInsert([]byte(`{"clientName":"Initech","projectNo":"P-9","media":"Podcast","status":"Archived"}`))
		require.True(t, res.OK())
		assert.Equal(t, "Podcast", res.Value.Media)
		assert.Equal(t, "Archived", res.Value.Status)
	})

	t.Run("ignores unknown and system fields", func(t *testing.T) {
		res := ParseInsert([]byte(`{"id":99,"createdAt":"x","clientName":"A","projectNo":"B","media":"C","extra":true}`))
		require.True(t, res.OK())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		res := ParseInsert([]byte(`{"clientName":"  Acme  ","projectNo":"P-1","media":"Web"}`))
		require.True(t, res.OK())
		assert.Equal(t, "Acme", res.Value.ClientName)
	})
}

func TestParseInsert_FirstFailingField(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantMsg   string
	}{
		{"empty object", `{}`, FieldClientName, "Required"},
		{"empty body", ``, FieldClientName, "Required"},
		{"missing project no and media", `{"clientName":"A"}`, FieldProjectNo, "Required"},
		{"missing media only", `{"clientName":"A","projectNo":"B"}`, FieldMedia, "Required"},
		{"empty client name", `{"clientName":"","projectNo":"","media":""}`, FieldClientName, "Must not be empty"},
		{"blank media", `{"clientName":"A","projectNo":"B","media":"   "}`, FieldMedia, "Must not be empty"},
		{"schema order wins over document order", `{"media":"","projectNo":"","clientName":"A"}`, FieldProjectNo, "Must not be empty"},
		{"wrong type", `{"clientName":42,"projectNo":"B","media":"C"}`, FieldClientName, "Expected string"},
		{"null required field", `{"clientName":null,"projectNo":"B","media":"C"}`, FieldClientName, "Expected string"},
		{"empty status", `{"clientName":"A","projectNo":"B","media":"C","status":""}`, FieldStatus, "Must not be empty"},
		{"status wrong type", `{"clientName":"A","projectNo":"B","media":"C","status":1}`, FieldStatus, "Expected string"},
		{"malformed json", `{"clientName":`, "", "Invalid JSON body"},
		{"not an object", `["a"]`, "", "Expected object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseInsert([]byte(tt.body))
			require.False(t, res.OK())
			assert.Equal(t, tt.wantField, res.Err.Field)
			assert.Equal(t, tt.wantMsg, res.Err.Message)
		})
	}
}

func TestParseInsert_Deterministic(t *testing.T) {
	body := []byte(`{"projectNo":5,"media":""}`)
	first := ParseInsert(body)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.Err, ParseInsert(body).Err)
	}
}

func TestParseUpdate(t *testing.T) {
	t.Run("empty object is a valid no-op", func(t *testing.T) {
		res := ParseUpdate([]byte(`{}`))
		require.True(t, res.OK())
		assert.True(t, res.Value.IsEmpty())
	})

	t.Run("empty body is a valid no-op", func(t *testing.T) {
		res := ParseUpdate(nil)
		require.True(t, res.OK())
		assert.True(t, res.Value.IsEmpty())
	})

	t.Run("partial status update", func(t *testing.T) {
		res := ParseUpdate([]byte(`{"status":"Completed"}`))
		require.True(t, res.OK())
		require.NotNil(t, res.Value.Status)
		assert.Equal(t, "Completed", *res.Value.Status)
		assert.Nil(t, res.Value.Media)
		assert.Nil(t, res.Value.ClientName)
		assert.Nil(t, res.Value.ProjectNo)
	})

	t.Run("rejects empty supplied field", func(t *testing.T) {
		res := ParseUpdate([]byte(`{"media":""}`))
		require.False(t, res.OK())
		assert.Equal(t, FieldMedia, res.Err.Field)
	})

	t.Run("rejects null field", func(t *testing.T) {
		res := ParseUpdate([]byte(`{"status":null}`))
		require.False(t, res.OK())
		assert.Equal(t, FieldStatus, res.Err.Field)
		assert.Equal(t, "Expected string", res.Err.Message)
	})

	t.Run("rejects wrong type", func(t *testing.T) {
		res := ParseUpdate([]byte(`{"projectNo":true}`))
		require.False(t, res.OK())
		assert.Equal(t, FieldProjectNo, res.Err.Field)
		assert.Equal(t, "Expected string", res.Err.Message)
	})
}

func TestValidateProject(t *testing.T) {
	valid := domain.Project{
		ID:         1,
		ClientName: "Acme Corp",
		ProjectNo:  "P-101",
		Media:      "Video",
		Status:     "In Progress",
		CreatedAt:  time.Now(),
	}
	assert.Nil(t, ValidateProject(valid))

	noID := valid
	noID.ID = 0
	assert.Equal(t, "id", ValidateProject(noID).Field)

	noMedia := valid
	noMedia.Media = ""
	assert.Equal(t, FieldMedia, ValidateProject(noMedia).Field)

	noTime := valid
	noTime.CreatedAt = time.Time{}
	assert.Equal(t, "createdAt", ValidateProject(noTime).Field)
}

func TestFieldError_Error(t *testing.T) {
	assert.Equal(t, "media: Required", (&FieldError{Field: "media", Message: "Required"}).Error())
	assert.Equal(t, "Invalid JSON body", (&FieldError{Message: "Invalid JSON body"}).Error())
}
