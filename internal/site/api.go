package site

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/darko-kalany/studio/internal/content"
	"github.com/darko-kalany/studio/internal/preview"
)

// maxPageSize caps one load-more slice so a crafted end param cannot
// drag the whole dataset through a single query.
const maxPageSize = 24

type apiError struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// sliceParams validates start/end. Both must be present, numeric and
// non-negative with end > start; end is clamped to start+maxPageSize.
func sliceParams(r *http.Request) (start, end int, err error) {
	start, err = strconv.Atoi(r.URL.Query().Get("start"))
	if err != nil || start < 0 {
		return 0, 0, fmt.Errorf("invalid start parameter")
	}
	end, err = strconv.Atoi(r.URL.Query().Get("end"))
	if err != nil || end < 0 {
		return 0, 0, fmt.Errorf("invalid end parameter")
	}
	if end <= start {
		return 0, 0, fmt.Errorf("end must be greater than start")
	}
	if end > start+maxPageSize {
		end = start + maxPageSize
	}
	return start, end, nil
}

type projectsResponse struct {
	Projects []content.ProjectSummary `json:"projects"`
	Total    int                      `json:"total"`
}

// APIProjects serves one slice of the project list for load-more.
func (s *Site) APIProjects(w http.ResponseWriter, r *http.Request) {
	start, end, err := sliceParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	opts := s.previewOptions(r)
	projects, total, err := s.projectSlice(r, start, end, opts)
	if err != nil {
		s.log().Error("projects slice failed", "error", err, "start", start, "end", end)
		writeJSON(w, http.StatusBadGateway, apiError{Error: "content fetch failed"})
		return
	}
	if projects == nil {
		projects = []content.ProjectSummary{}
	}
	writeJSON(w, http.StatusOK, projectsResponse{Projects: projects, Total: total})
}

func (s *Site) projectSlice(r *http.Request, start, end int, opts preview.Options) ([]content.ProjectSummary, int, error) {
	ctx := r.Context()
	projects, err := s.Content.ProjectsPage(ctx, start, end, opts)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Content.ProjectsCount(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

type postsResponse struct {
	Posts []content.PostSummary `json:"posts"`
	Total int                   `json:"total"`
}

// APIPosts serves one slice of the post list for load-more.
func (s *Site) APIPosts(w http.ResponseWriter, r *http.Request) {
	start, end, err := sliceParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	opts := s.previewOptions(r)
	ctx := r.Context()
	posts, err := s.Content.PostsPage(ctx, start, end, opts)
	if err != nil {
		s.log().Error("posts slice failed", "error", err, "start", start, "end", end)
		writeJSON(w, http.StatusBadGateway, apiError{Error: "content fetch failed"})
		return
	}
	total, err := s.Content.PostsCount(ctx, opts)
	if err != nil {
		s.log().Error("posts count failed", "error", err)
		writeJSON(w, http.StatusBadGateway, apiError{Error: "content fetch failed"})
		return
	}
	if posts == nil {
		posts = []content.PostSummary{}
	}
	writeJSON(w, http.StatusOK, postsResponse{Posts: posts, Total: total})
}
