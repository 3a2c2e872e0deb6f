package cmd

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yskmt/cantus/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func postGenerate(t *testing.T, body model.GenerateRequestBody) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", "/generate", bytes.NewReader(data))
	w := httptest.NewRecorder()
	handleGenerate(w, req)
	return w
}

func TestGenerateEndpointReturnsSummary(t *testing.T) {
	w := postGenerate(t, model.GenerateRequestBody{Seed: 3, Paradigm: "vocal-lead", Bars: 2})

	assert := assert.New(t)
	assert.Equal(200, w.Code)
	var res model.GenerateResult
	assert.NoError(json.NewDecoder(w.Body).Decode(&res))
	assert.Equal(int64(3), res.Seed)
	assert.Equal("vocal-lead", res.Paradigm)
	assert.Equal(uint32(2), res.Bars)
	assert.Greater(res.NumNotes, 0)
	assert.NotEmpty(res.RunId)
}

func TestGenerateEndpointStreamsMidi(t *testing.T) {
	w := postGenerate(t, model.GenerateRequestBody{Seed: 3, Bars: 2, Format: "midi"})

	assert := assert.New(t)
	assert.Equal(200, w.Code)
	assert.Equal("audio/midi", w.Header().Get("Content-Type"))
	_, err := smf.ReadFrom(bytes.NewReader(w.Body.Bytes()))
	assert.NoError(err)
}

func TestGenerateEndpointRejectsUnknownParadigm(t *testing.T) {
	w := postGenerate(t, model.GenerateRequestBody{Paradigm: "trombone-lead"})

	assert := assert.New(t)
	assert.Equal(400, w.Code)
	var res model.ErrorResponse
	assert.NoError(json.NewDecoder(w.Body).Decode(&res))
	assert.NotEmpty(res.Error)
}
