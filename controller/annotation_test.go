package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annothem/annothem-backend/entity"
)

func TestGetAnnotationsWithoutSavedWork(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/annotations/42", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, "no saved annotations is not an error")
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetAnnotationsInvalidID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/annotations/nope", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveAndGetAnnotationsRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	payload := `[{"type":"rect","x":1,"y":2,"w":10,"h":20},{"type":"circle","cx":5,"cy":5,"r":3}]`
	save := env.do(t, http.MethodPost, "/annotations/7",
		jsonBody(`{"data":`+payload+`}`), jsonHeaders())
	require.Equal(t, http.StatusOK, save.Code, save.Body.String())
	assert.Contains(t, save.Body.String(), "Annotations saved")

	get := env.do(t, http.MethodGet, "/annotations/7", nil, nil)
	require.Equal(t, http.StatusOK, get.Code)
	assert.JSONEq(t, payload, get.Body.String())

	// element order survives the round trip
	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "rect", got[0]["type"])
	assert.Equal(t, "circle", got[1]["type"])
}

func TestSaveAnnotationsReplacesWholesale(t *testing.T) {
	env := newTestEnv(t)

	first := env.do(t, http.MethodPost, "/annotations/7",
		jsonBody(`{"data":[{"type":"rect","x":1}]}`), jsonHeaders())
	require.Equal(t, http.StatusOK, first.Code)

	second := env.do(t, http.MethodPost, "/annotations/7",
		jsonBody(`{"data":[{"type":"path","points":[1,2]}]}`), jsonHeaders())
	require.Equal(t, http.StatusOK, second.Code)

	count, err := env.repo.AnnotationRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "save is an upsert, not an append")

	get := env.do(t, http.MethodGet, "/annotations/7", nil, nil)
	assert.JSONEq(t, `[{"type":"path","points":[1,2]}]`, get.Body.String())
}

func TestSaveAnnotationsEmptyArray(t *testing.T) {
	env := newTestEnv(t)

	save := env.do(t, http.MethodPost, "/annotations/7",
		jsonBody(`{"data":[]}`), jsonHeaders())
	require.Equal(t, http.StatusOK, save.Code, save.Body.String())

	get := env.do(t, http.MethodGet, "/annotations/7", nil, nil)
	assert.JSONEq(t, "[]", get.Body.String())
}

func TestSaveAnnotationsInvalidBody(t *testing.T) {
	env := newTestEnv(t)

	missingData := env.do(t, http.MethodPost, "/annotations/7",
		jsonBody(`{"shapes":[]}`), jsonHeaders())
	assert.Equal(t, http.StatusBadRequest, missingData.Code)

	notJSON := env.do(t, http.MethodPost, "/annotations/7",
		jsonBody(`not json`), jsonHeaders())
	assert.Equal(t, http.StatusBadRequest, notJSON.Code)
}

func TestImageAnnotationLifecycle(t *testing.T) {
	env := newTestEnv(t)

	// upload
	rec := env.uploadFile(t, "scan.png", []byte("png-bytes"))
	require.Equal(t, http.StatusOK, rec.Code)
	var img entity.Image
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &img))

	// annotate
	save := env.do(t, http.MethodPost, "/annotations/"+itoa(img.ID),
		jsonBody(`{"data":[{"type":"rect","x":1}]}`), jsonHeaders())
	require.Equal(t, http.StatusOK, save.Code)

	get := env.do(t, http.MethodGet, "/annotations/"+itoa(img.ID), nil, nil)
	require.Equal(t, http.StatusOK, get.Code)
	assert.JSONEq(t, `[{"type":"rect","x":1}]`, get.Body.String())

	// delete the image; its annotations go with it
	del := env.do(t, http.MethodDelete, "/images/"+itoa(img.ID), nil, nil)
	require.Equal(t, http.StatusOK, del.Code)

	after := env.do(t, http.MethodGet, "/annotations/"+itoa(img.ID), nil, nil)
	require.Equal(t, http.StatusOK, after.Code)
	assert.JSONEq(t, "[]", after.Body.String())

	list := env.do(t, http.MethodGet, "/images", nil, nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.JSONEq(t, "[]", list.Body.String())
}
