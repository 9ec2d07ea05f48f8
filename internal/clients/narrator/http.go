package narrator

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/emberfall/ascent/internal/domain/story"
	"github.com/emberfall/ascent/internal/errors"
	"github.com/emberfall/ascent/internal/uuid"
)

const advancePath = "/api/story/advance"

// Config for the HTTP narrator client.
type Config struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	HTTPClient    *http.Client
	UUIDGenerator uuid.Generator
}

// HTTPClient is the production Client implementation.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	uuider     uuid.Generator
}

// NewHTTPClient creates an HTTP narrator client.
func NewHTTPClient(cfg *Config) (*HTTPClient, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if cfg.BaseURL == "" {
		return nil, errors.InvalidArgument("base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	uuider := cfg.UUIDGenerator
	if uuider == nil {
		uuider = uuid.NewGoogleUUIDGenerator()
	}

	return &HTTPClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		uuider:     uuider,
	}, nil
}

// wire shapes are looser than the domain types so that a sloppy
// narration payload degrades instead of failing the whole response
type wireReply struct {
	NPCID string `json:"npcId"`
	Text  string `json:"text"`
}

type wireBeat struct {
	ID         string            `json:"id"`
	Narrative  string            `json:"narrative"`
	NPCReplies []wireReply       `json:"npcReplies"`
	Tags       []json.RawMessage `json:"tags"`
	Delta      *story.Delta      `json:"delta"`
}

type advanceResponse struct {
	Beat  *wireBeat `json:"beat"`
	Error string    `json:"error"`
}

// Advance posts the action to the narration service and coerces the
// reply into a beat. Any transport or shape problem comes back as an
// error; the caller decides how to degrade.
func (c *HTTPClient) Advance(ctx context.Context, input *AdvanceInput) (*story.Beat, error) {
	if input == nil || strings.TrimSpace(input.Action) == "" {
		return nil, errors.InvalidArgument("action is required")
	}
	if input.Hero == nil {
		return nil, errors.InvalidArgument("hero is required")
	}

	payload := &AdvanceInput{
		Action: strings.TrimSpace(input.Action),
		Hero:   input.Hero,
		Beats:  story.Window(input.Beats, story.NarratorWindow),
	}
	if payload.Beats == nil {
		payload.Beats = []story.Beat{}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal advance request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+advancePath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create advance request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		wrapped := errors.Wrap(err, "narration service unreachable")
		wrapped.Code = errors.CodeUnavailable
		return nil, wrapped
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read narration response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.CodeUnavailable, "narration service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed advanceResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, errors.Wrap(err, "failed to parse narration response")
	}
	if parsed.Beat == nil {
		return nil, errors.ContentInvalid("narration response has no beat")
	}

	return c.coerceBeat(parsed.Beat, payload.Action)
}

func (c *HTTPClient) coerceBeat(raw *wireBeat, action string) (*story.Beat, error) {
	if strings.TrimSpace(raw.Narrative) == "" {
		return nil, errors.ContentInvalid("narration beat has empty narrative")
	}

	id := raw.ID
	if id == "" {
		id = c.uuider.New()
	}

	replies := make([]story.Reply, 0, len(raw.NPCReplies))
	for _, reply := range raw.NPCReplies {
		if reply.Text == "" {
			continue
		}
		npcID := reply.NPCID
		if npcID == "" {
			npcID = "narrator"
		}
		replies = append(replies, story.Reply{NPCID: npcID, Text: reply.Text})
	}

	var tags []string
	for _, raw := range raw.Tags {
		var tag string
		if err := json.Unmarshal(raw, &tag); err != nil {
			continue
		}
		tags = append(tags, tag)
	}

	return &story.Beat{
		ID:           id,
		PlayerAction: action,
		Narrative:    raw.Narrative,
		NPCReplies:   replies,
		Tags:         tags,
		Delta:        raw.Delta,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
