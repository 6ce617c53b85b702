/*
 Copyright 2024 Qiniu Cloud (qiniu.com).

 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/google/go-github/v57/github"
	"github.com/gregjones/httpcache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"

	"github.com/prosecheck/prosecheck/config"
	"github.com/prosecheck/prosecheck/internal/buffer"
	"github.com/prosecheck/prosecheck/internal/checker"
	"github.com/prosecheck/prosecheck/internal/checker/dupword"
	"github.com/prosecheck/prosecheck/internal/metric"
	"github.com/prosecheck/prosecheck/internal/util"
)

type options struct {
	port          int
	logLevel      int
	accessToken   string
	webhookSecret string
	config        string
	debug         bool
}

func (o options) Validate() error {
	if o.webhookSecret == "" {
		return errors.New("webhook-secret is required")
	}
	return nil
}

func newServeCmd() *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run the pull-request review webhook server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.Validate(); err != nil {
				return fmt.Errorf("invalid options: %w", err)
			}
			log.SetOutputLevel(o.logLevel)

			cfg, err := config.NewConfig(o.config)
			if err != nil {
				return fmt.Errorf("failed to create config: %w", err)
			}

			s := &Server{
				config:        cfg,
				webhookSecret: []byte(o.webhookSecret),
				accessToken:   o.accessToken,
				debug:         o.debug,
			}

			if o.config != "" {
				go func() {
					if err := config.Watch(o.config, s.setConfig); err != nil {
						log.Errorf("config watcher stopped: %v", err)
					}
				}()
			}

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			mux.HandleFunc("/check", s.handleCheckText)
			mux.Handle("/", s)
			log.Infof("listening on port %d", o.port)

			// TODO: graceful shutdown
			return http.ListenAndServe(fmt.Sprintf(":%d", o.port), mux)
		},
	}

	cmd.Flags().IntVar(&o.port, "port", 8888, "port to listen on")
	cmd.Flags().IntVar(&o.logLevel, "log-level", 0, "log level")
	cmd.Flags().StringVar(&o.accessToken, "access-token", "", "personal access token")
	cmd.Flags().StringVar(&o.webhookSecret, "webhook-secret", "", "webhook secret")
	cmd.Flags().StringVar(&o.config, "config", "", "config file")
	cmd.Flags().BoolVar(&o.debug, "debug", false, "debug mode")
	return cmd
}

// Server lints the prose files changed by a pull request and posts review
// comments on the offending lines. It also serves POST /check for editor
// integrations.
type Server struct {
	mu     sync.RWMutex
	config config.Config

	webhookSecret []byte
	accessToken   string
	debug         bool
}

func (s *Server) setConfig(cfg config.Config) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
}

func (s *Server) getConfig() config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	eventGUID := github.DeliveryID(r)
	if len(eventGUID) > 12 {
		// limit the length of eventGUID to 12
		eventGUID = eventGUID[len(eventGUID)-12:]
	}
	ctx := util.WithEventGUID(context.Background(), eventGUID)
	log := util.FromContext(ctx)

	payload, err := github.ValidatePayload(r, s.webhookSecret)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		log.Errorf("parse webhook failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fmt.Fprint(w, "Event received. Have a nice day.")

	switch event := event.(type) {
	case *github.PullRequestEvent:
		go func() {
			if err := s.processPullRequestEvent(ctx, event); err != nil {
				log.Errorf("process pull request event: %v", err)
			}
		}()
	default:
		log.Debugf("skipping event type %s\n", github.WebHookType(r))
	}
}

func (s *Server) processPullRequestEvent(ctx context.Context, event *github.PullRequestEvent) error {
	log := util.FromContext(ctx)
	if event.GetAction() != "opened" && event.GetAction() != "reopened" && event.GetAction() != "synchronize" {
		log.Debugf("skipping action %s\n", event.GetAction())
		return nil
	}

	return s.handle(ctx, event)
}

func (s *Server) handle(ctx context.Context, event *github.PullRequestEvent) error {
	var (
		num     = event.GetPullRequest().GetNumber()
		org     = event.GetRepo().GetOwner().GetLogin()
		repo    = event.GetRepo().GetName()
		orgRepo = org + "/" + repo
		headSHA = event.GetPullRequest().GetHead().GetSHA()
	)
	log := util.FromContext(ctx)
	gc := s.githubClient()

	log.Infof("processing pull request %d (%s)\n", num, orgRepo)

	changedFiles, response, err := ListPullRequestsFiles(ctx, gc, org, repo, num)
	if err != nil {
		return err
	}
	if response.StatusCode != http.StatusOK {
		log.Errorf("list files failed: %v", response)
		return fmt.Errorf("list files failed: %v", response)
	}
	log.Infof("found %d files affected by pull request %d\n", len(changedFiles), num)

	hunkChecker, err := NewGithubCommitFileHunkChecker(changedFiles)
	if err != nil {
		return err
	}

	cfg := s.getConfig()
	var allIssues []checker.Issue
	for _, commitFile := range changedFiles {
		filename := commitFile.GetFilename()
		if !isProseFile(filename) || commitFile.GetStatus() == "removed" {
			continue
		}

		content, err := fetchFileContent(ctx, gc, org, repo, filename, headSHA)
		if err != nil {
			log.Errorf("failed to fetch %s@%s: %v", filename, headSHA, err)
			continue
		}

		buf := buffer.New(filename, content)
		for _, name := range checker.Names() {
			ccfg := cfg.Get(org, repo, name)
			if !ccfg.Enabled() {
				continue
			}

			c, err := checker.Factory(name)(ccfg)
			if err != nil {
				log.Errorf("[%s] bad config on repo %v: %v", name, orgRepo, err)
				continue
			}

			issues, err := c.Check(checker.Agent{
				ID:            util.GetEventGUID(ctx),
				Buffer:        buf,
				Start:         -1,
				End:           -1,
				CheckerConfig: ccfg,
			})
			if err != nil {
				log.Errorf("[%s] check failed: %v", name, err)
				continue
			}

			// only the lines this PR touched are worth commenting on
			var related []checker.Issue
			for _, issue := range issues {
				if hunkChecker.InHunk(filename, issue.Line) {
					related = append(related, issue)
				}
			}

			log.Infof("[%s] found %d issues (%d in hunks) in %s on repo %v",
				name, len(issues), len(related), filename, orgRepo)
			metric.IncIssueCounter(orgRepo, name, float64(len(related)))
			allIssues = append(allIssues, related...)
		}
	}

	if len(allIssues) == 0 {
		log.Infof("no style issues related to pull request %d (%s)\n", num, orgRepo)
		return nil
	}

	comments := buildPullRequestComments(allIssues, changedFiles)
	if err := PostPullReviewCommentsWithRetry(ctx, gc, org, repo, num, comments); err != nil {
		return err
	}
	log.Infof("add %d comments for pull request %d (%s)\n", len(comments), num, orgRepo)
	return nil
}

func (s *Server) githubClient() *github.Client {
	gc := github.NewClient(httpcache.NewMemoryCacheTransport().Client())
	if s.accessToken != "" {
		gc = gc.WithAuthToken(s.accessToken)
	}
	return gc
}

func isProseFile(filename string) bool {
	ext := filepath.Ext(filename)
	for _, e := range proseExts {
		if ext == e {
			return true
		}
	}
	return false
}

func fetchFileContent(ctx context.Context, gc *github.Client, org, repo, path, ref string) (string, error) {
	content, _, _, err := gc.Repositories.GetContents(ctx, org, repo, path,
		&github.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		return "", err
	}
	return content.GetContent()
}

// checkRequest is the POST /check payload: a buffer to scan and an optional
// range and checker subset.
type checkRequest struct {
	Name     string   `json:"name,omitempty"`
	Text     string   `json:"text"`
	Checkers []string `json:"checkers,omitempty"`
	Start    *int     `json:"start,omitempty"`
	End      *int     `json:"end,omitempty"`
}

type checkResponse struct {
	Issues []checker.Issue `json:"issues"`
	Notice string          `json:"notice,omitempty"`
}

// handleCheckText scans a raw text payload and returns the issues as JSON.
// This is the integration point for editors that do their own rendering.
func (s *Server) handleCheckText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		req.Name = "<request>"
	}
	start, end := -1, -1
	if req.Start != nil {
		start = *req.Start
	}
	if req.End != nil {
		end = *req.End
	}

	checkers, err := buildCheckers(s.getConfig(), req.Checkers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	buf := buffer.New(req.Name, req.Text)
	resp := checkResponse{Issues: []checker.Issue{}}
	for _, c := range checkers {
		issues, err := c.Check(checker.Agent{Buffer: buf, Start: start, End: end})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		resp.Issues = append(resp.Issues, issues...)
		metric.IncIssueCounter(req.Name, c.Name(), float64(len(issues)))
		if c.Name() == "dupword" {
			resp.Notice = dupword.ScanCompleteNotice
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}
