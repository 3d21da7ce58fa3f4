package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/puzzlecraft/cryptogram-go/internal/api/apierr"
	"github.com/puzzlecraft/cryptogram-go/internal/api/response"
	"github.com/puzzlecraft/cryptogram-go/internal/factory"
	"github.com/puzzlecraft/cryptogram-go/internal/model"
	"github.com/puzzlecraft/cryptogram-go/internal/testutil"
)

type APISuite struct {
	suite.Suite
	server *httptest.Server
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	app, err := factory.New(factory.Config{Logger: testutil.NopLogger()})
	s.Require().NoError(err)

	router := NewRouter(RouterConfig{
		Logger:           testutil.NopLogger(),
		PuzzleController: app.PuzzleController,
		StatsService:     app.StatsService,
	})
	s.server = httptest.NewServer(router)
}

func (s *APISuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *APISuite) createPuzzle(phrase string) model.Cryptogram {
	body, err := json.Marshal(map[string]string{"phrase": phrase})
	s.Require().NoError(err)

	resp, err := http.Post(s.server.URL+"/api/v1/puzzles", "application/json", bytes.NewReader(body))
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var created model.Cryptogram
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&created))
	return created
}

func (s *APISuite) TestCreatePuzzle() {
	created := s.createPuzzle("Hello, World!")

	s.NotEmpty(created.ID)
	s.Equal("hello, world!", created.Phrase)
	s.Len(created.Encoded, len("hello, world!"))
	s.Equal(model.Alphabet, created.Alphabet)
	s.NoError(created.Mapping.Validate())
	s.GreaterOrEqual(created.Attempts, 1)
	s.False(created.CreatedAt.IsZero())
}

func (s *APISuite) TestCreatePuzzleEmptyPhrase() {
	created := s.createPuzzle("")

	s.Equal("", created.Encoded)
	s.NoError(created.Mapping.Validate())
}

func (s *APISuite) TestCreatePuzzleInvalidBody() {
	resp, err := http.Post(s.server.URL+"/api/v1/puzzles", "application/json", bytes.NewReader([]byte("{nope")))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var errResp apierr.ErrorResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&errResp))
	s.Equal(apierr.CodeInvalidRequest, errResp.Error.Code)
}

func (s *APISuite) TestGetPuzzle() {
	created := s.createPuzzle("secret message")

	resp, err := http.Get(fmt.Sprintf("%s/api/v1/puzzles/%s", s.server.URL, created.ID))
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var fetched model.Cryptogram
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&fetched))
	s.Equal(created.Encoded, fetched.Encoded)
	s.Equal(created.Mapping, fetched.Mapping)
}

func (s *APISuite) TestGetPuzzleNotFound() {
	resp, err := http.Get(s.server.URL + "/api/v1/puzzles/NOPE1234")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)

	var errResp apierr.ErrorResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&errResp))
	s.Equal(apierr.CodePuzzleNotFound, errResp.Error.Code)
}

func (s *APISuite) TestDeletePuzzle() {
	created := s.createPuzzle("to be deleted")

	req, err := http.NewRequest(http.MethodDelete,
		fmt.Sprintf("%s/api/v1/puzzles/%s", s.server.URL, created.ID), nil)
	s.Require().NoError(err)

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusNoContent, resp.StatusCode)

	getResp, err := http.Get(fmt.Sprintf("%s/api/v1/puzzles/%s", s.server.URL, created.ID))
	s.Require().NoError(err)
	defer getResp.Body.Close()
	s.Equal(http.StatusNotFound, getResp.StatusCode)
}

func (s *APISuite) TestStatsAttempts() {
	resp, err := http.Get(s.server.URL + "/api/v1/stats/attempts?trials=200")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var result response.Stats
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&result))
	s.Equal(200, result.Trials)
	s.GreaterOrEqual(result.Average, 1.0)
}

func (s *APISuite) TestStatsAttemptsRejectsZeroTrials() {
	resp, err := http.Get(s.server.URL + "/api/v1/stats/attempts?trials=0")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var errResp apierr.ErrorResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&errResp))
	s.Equal(apierr.CodeInvalidTrials, errResp.Error.Code)
}

func (s *APISuite) TestStatsAttemptsRejectsNonInteger() {
	resp, err := http.Get(s.server.URL + "/api/v1/stats/attempts?trials=lots")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *APISuite) TestStatsAttemptsRejectsExcessiveTrials() {
	resp, err := http.Get(s.server.URL + "/api/v1/stats/attempts?trials=99999999")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *APISuite) TestHealth() {
	resp, err := http.Get(s.server.URL + "/api/v1/health")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var health response.Health
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&health))
	s.Equal("ok", health.Status)
}
