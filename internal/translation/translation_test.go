package translation_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"cvhub/internal/translation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalizeLanguage(t *testing.T) {
	cases := map[string]string{
		"English": "en",
		" en-US ": "en",
		"en-gb":   "en",
		"SPANISH": "es",
		"es-MX":   "es",
		"es-es":   "es",
		" FR ":    "fr",
		"":        "",
	}
	for in, want := range cases {
		assert.Equal(t, want, translation.NormalizeLanguage(in), "input %q", in)
	}
}

func TestRoute(t *testing.T) {
	b, ok := translation.Route("en", "es")
	assert.True(t, ok)
	assert.Equal(t, translation.BackendInternal, b)

	b, ok = translation.Route("es", "en")
	assert.True(t, ok)
	assert.Equal(t, translation.BackendExternal, b)

	_, ok = translation.Route("en", "en")
	assert.False(t, ok)
	_, ok = translation.Route("en", "fr")
	assert.False(t, ok)
}

func TestInternalClient_TranslateCV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate", r.URL.Path)
		var req struct {
			SourceLanguage string          `json:"source_language"`
			TargetLanguage string          `json:"target_language"`
			CV             translation.CV `json:"cv"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "en", req.SourceLanguage)
		assert.Equal(t, "es", req.TargetLanguage)

		out := req.CV
		out.Summary = strPtr("Ingeniero de software")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"translation": out})
	}))
	defer srv.Close()

	client, err := translation.NewInternalClient(srv.URL+"/", 5*time.Second)
	require.NoError(t, err)

	got, err := client.TranslateCV(context.Background(), translation.CV{
		Summary:  strPtr("Software engineer"),
		Location: strPtr(""),
	}, "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "Ingeniero de software", *got.Summary)
	assert.Equal(t, "", *got.Location)
}

func TestInternalClient_Errors(t *testing.T) {
	missing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": {}}`))
	}))
	defer missing.Close()
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	client, err := translation.NewInternalClient(missing.URL, time.Second)
	require.NoError(t, err)
	_, err = client.TranslateCV(context.Background(), translation.CV{}, "en", "es")
	assert.True(t, errors.Is(err, translation.ErrBadResponse))

	client, err = translation.NewInternalClient(failing.URL, time.Second)
	require.NoError(t, err)
	_, err = client.TranslateCV(context.Background(), translation.CV{}, "en", "es")
	assert.True(t, errors.Is(err, translation.ErrFailed))

	_, err = translation.NewInternalClient("", time.Second)
	assert.Error(t, err)
}

func TestExternalClient_TranslateCVKeepsOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k3y", r.URL.Query().Get("key"))
		var req struct {
			Q      []string `json:"q"`
			Source string   `json:"source"`
			Target string   `json:"target"`
			Format string   `json:"format"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "es", req.Source)
		assert.Equal(t, "en", req.Target)
		assert.Equal(t, "text", req.Format)
		assert.Equal(t, []string{"Ingeniera", "Madrid", "Acme", "Desarrolladora", "Go", "Lenguajes"}, req.Q)

		var translations []map[string]string
		for _, q := range req.Q {
			translations = append(translations, map[string]string{"translatedText": strings.ToUpper(q)})
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": map[string]interface{}{"translations": translations}})
	}))
	defer srv.Close()

	client, err := translation.NewExternalClient(srv.URL, "k3y", 5*time.Second)
	require.NoError(t, err)

	in := translation.CV{
		Title:    strPtr(" Ingeniera "),
		FullName: strPtr("   "),
		Location: strPtr("Madrid"),
		WorkExperiences: []translation.WorkExperience{
			{Company: strPtr("Acme"), Position: strPtr("Desarrolladora")},
		},
		Skills: []translation.Skill{{Name: strPtr("Go"), Category: strPtr("Lenguajes")}},
	}
	got, err := client.TranslateCV(context.Background(), in, "es", "en")
	require.NoError(t, err)

	assert.Equal(t, "INGENIERA", *got.Title)
	assert.Equal(t, "   ", *got.FullName)
	assert.Equal(t, "MADRID", *got.Location)
	assert.Nil(t, got.Summary)
	assert.Equal(t, "ACME", *got.WorkExperiences[0].Company)
	assert.Equal(t, "DESARROLLADORA", *got.WorkExperiences[0].Position)
	assert.Equal(t, "GO", *got.Skills[0].Name)
	assert.Equal(t, "LENGUAJES", *got.Skills[0].Category)

	// the input is untouched
	assert.Equal(t, " Ingeniera ", *in.Title)
	assert.Equal(t, "Acme", *in.WorkExperiences[0].Company)
}

func TestExternalClient_NoTextNoCall(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	client, err := translation.NewExternalClient(srv.URL, "k", time.Second)
	require.NoError(t, err)
	got, err := client.TranslateCV(context.Background(), translation.CV{Email: strPtr("a@b.c"), Summary: strPtr("  ")}, "es", "en")
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", *got.Email)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestExternalClient_CountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"translations":[]}}`))
	}))
	defer srv.Close()

	client, err := translation.NewExternalClient(srv.URL, "k", time.Second)
	require.NoError(t, err)
	_, err = client.TranslateCV(context.Background(), translation.CV{Title: strPtr("Hola")}, "es", "en")
	assert.True(t, errors.Is(err, translation.ErrBadResponse))

	_, err = translation.NewExternalClient("", "", time.Second)
	assert.Error(t, err)
}
