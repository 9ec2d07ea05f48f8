package story_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/emberfall/ascent/internal/clients/narrator"
	mocknarrator "github.com/emberfall/ascent/internal/clients/narrator/mock"
	"github.com/emberfall/ascent/internal/domain/campaign"
	"github.com/emberfall/ascent/internal/domain/gamelog"
	storybeat "github.com/emberfall/ascent/internal/domain/story"
	"github.com/emberfall/ascent/internal/repositories/snapshot"
	storyservice "github.com/emberfall/ascent/internal/services/story"
	"github.com/emberfall/ascent/internal/testutils"
	"github.com/emberfall/ascent/internal/uuid"
)

type StoryServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	client   *mocknarrator.MockClient
	repo     *snapshot.InMemoryRepository
	service  storyservice.Service
}

func (s *StoryServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.client = mocknarrator.NewMockClient(s.mockCtrl)
	s.repo = snapshot.NewInMemoryRepository()

	svc, err := storyservice.NewService(&storyservice.ServiceConfig{
		Campaign:      campaign.Emberfall,
		Repository:    s.repo,
		Client:        s.client,
		UUIDGenerator: &uuid.SequentialGenerator{Prefix: "id"},
		RandSource:    rand.NewSource(1),
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *StoryServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StoryServiceTestSuite))
}

func (s *StoryServiceTestSuite) startHero() {
	s.Require().NoError(s.service.StartCharacter(s.ctx, testutils.CreateTestHero("hero-1", "Wren")))
}

func (s *StoryServiceTestSuite) TestSubmitAction_NarratorBeat() {
	s.startHero()

	served := &storybeat.Beat{
		ID:           "beat-1",
		PlayerAction: "search the rubble",
		Narrative:    "Dust sifts from the broken arch as you pull stones aside.",
		NPCReplies:   []storybeat.Reply{{NPCID: "tamsin", Text: "Careful! That wall has opinions."}},
		Tags:         []string{"act1", "salvage"},
		Delta: &storybeat.Delta{
			StatusAdjust: map[string]int{"stress": 1},
			Flags:        map[string]bool{"found_cache": true},
			Notes:        []string{"A supply cache rests beneath the rubble."},
		},
		CreatedAt: time.Now().UTC(),
	}

	s.client.EXPECT().
		Advance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *narrator.AdvanceInput) (*storybeat.Beat, error) {
			s.Equal("search the rubble", input.Action)
			s.Equal("Wren", input.Hero.Name)
			s.Empty(input.Beats)
			return served, nil
		})

	beat := s.service.SubmitAction(s.ctx, "search the rubble")
	s.Require().NotNil(beat)
	s.Equal("beat-1", beat.ID)

	s.Require().Len(s.service.Beats(), 1)
	state := s.service.Hero()
	s.Equal(1, state.StatusValue("stress"))
	s.True(state.HasFlag("found_cache"))
	s.Contains(state.Notes, "A supply cache rests beneath the rubble.")
	s.Empty(s.service.Notice())

	entries := s.service.LogEntries()
	types := make([]gamelog.EntryType, 0, len(entries))
	for _, entry := range entries {
		types = append(types, entry.Type)
	}
	// welcome, action, narrative, npc reply, delta note
	s.Equal([]gamelog.EntryType{
		gamelog.TypeSystem, gamelog.TypeAction, gamelog.TypeNarration,
		gamelog.TypeNarration, gamelog.TypeEffect,
	}, types)
	s.Equal("Tamsin Quickwick", entries[3].Detail)
}

func (s *StoryServiceTestSuite) TestSubmitAction_FallbackOnError() {
	s.startHero()

	s.client.EXPECT().
		Advance(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("connection refused"))

	beat := s.service.SubmitAction(s.ctx, "search the rubble")
	s.Require().NotNil(beat)

	s.Contains(beat.Narrative, "You search the rubble.")
	act1 := campaign.Emberfall.ActByID("act1")
	s.Contains(beat.Narrative, act1.Situation)
	s.Equal([]string{"act1"}, beat.Tags)
	s.Nil(beat.Delta)

	s.Require().Len(beat.NPCReplies, 1)
	s.NotNil(campaign.Emberfall.CharacterByID(beat.NPCReplies[0].NPCID))
	s.NotEmpty(beat.NPCReplies[0].Text)

	s.Equal(storyservice.OfflineNotice, s.service.Notice())

	// A later successful beat clears the notice
	s.client.EXPECT().
		Advance(gomock.Any(), gomock.Any()).
		Return(&storybeat.Beat{ID: "beat-2", PlayerAction: "press on", Narrative: "The path clears."}, nil)
	s.Require().NotNil(s.service.SubmitAction(s.ctx, "press on"))
	s.Empty(s.service.Notice())
}

func (s *StoryServiceTestSuite) TestSubmitAction_NoClientNarratesLocally() {
	svc, err := storyservice.NewService(&storyservice.ServiceConfig{
		Campaign:      campaign.Emberfall,
		Repository:    s.repo,
		UUIDGenerator: &uuid.SequentialGenerator{Prefix: "id"},
		RandSource:    rand.NewSource(1),
	})
	s.Require().NoError(err)
	s.Require().NoError(svc.StartCharacter(s.ctx, testutils.CreateTestHero("hero-1", "Wren")))

	beat := svc.SubmitAction(s.ctx, "light a lantern")
	s.Require().NotNil(beat)
	s.Contains(beat.Narrative, "You light a lantern.")
	s.Equal(storyservice.OfflineNotice, svc.Notice())
}

func (s *StoryServiceTestSuite) TestFallbackActHeuristic() {
	// With no act tag to go on, the act is inferred from how far the
	// story has run
	cases := []struct {
		beats int
		actID string
	}{
		{0, "act1"}, {1, "act1"}, {2, "act2"}, {3, "act2"}, {4, "act3"}, {6, "act3"},
	}

	for _, tc := range cases {
		repo := snapshot.NewInMemoryRepository()
		seed := make([]storybeat.Beat, 0, tc.beats)
		for i := 0; i < tc.beats; i++ {
			seed = append(seed, storybeat.Beat{
				ID: fmt.Sprintf("old-%d", i), PlayerAction: "walk", Narrative: "...",
			})
		}
		s.Require().NoError(repo.Save(s.ctx, &snapshot.Snapshot{
			ID:    "hero-1",
			Hero:  testutils.CreateTestHero("hero-1", "Wren"),
			Beats: seed,
		}))

		svc, err := storyservice.NewService(&storyservice.ServiceConfig{
			Campaign:      campaign.Emberfall,
			Repository:    repo,
			UUIDGenerator: &uuid.SequentialGenerator{Prefix: "id"},
			RandSource:    rand.NewSource(1),
		})
		s.Require().NoError(err)
		ok, err := svc.Restore(s.ctx, "hero-1")
		s.Require().NoError(err)
		s.Require().True(ok)

		beat := svc.SubmitAction(s.ctx, "advance")
		s.Require().NotNil(beat)
		s.Equal([]string{tc.actID}, beat.Tags, "after %d beats", tc.beats)
	}
}

func (s *StoryServiceTestSuite) TestSubmitAction_ActFromBeatTags() {
	// Seed a saved run whose last beat is tagged act3
	s.Require().NoError(s.repo.Save(s.ctx, &snapshot.Snapshot{
		ID:   "hero-1",
		Hero: testutils.CreateTestHero("hero-1", "Wren"),
		Beats: []storybeat.Beat{
			{ID: "old-1", PlayerAction: "climb", Narrative: "...", Tags: []string{"weather", "act3"}},
		},
	}))

	svc, err := storyservice.NewService(&storyservice.ServiceConfig{
		Campaign:      campaign.Emberfall,
		Repository:    s.repo,
		UUIDGenerator: &uuid.SequentialGenerator{Prefix: "id"},
		RandSource:    rand.NewSource(1),
	})
	s.Require().NoError(err)

	ok, err := svc.Restore(s.ctx, "hero-1")
	s.Require().NoError(err)
	s.Require().True(ok)

	beat := svc.SubmitAction(s.ctx, "face the warden")
	s.Require().NotNil(beat)
	s.Equal([]string{"act3"}, beat.Tags)
	s.Contains(beat.Narrative, campaign.Emberfall.ActByID("act3").Situation)
}

func (s *StoryServiceTestSuite) TestSubmitAction_NoOps() {
	s.Nil(s.service.SubmitAction(s.ctx, "wander"), "no hero yet")

	s.startHero()
	s.Nil(s.service.SubmitAction(s.ctx, "   "))
	s.Empty(s.service.Beats())
}

func (s *StoryServiceTestSuite) TestSubmitAction_StaleResponseDiscarded() {
	s.startHero()

	s.client.EXPECT().
		Advance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *narrator.AdvanceInput) (*storybeat.Beat, error) {
			// The player resets while the request is in flight
			s.Require().NoError(s.service.Reset(ctx))
			return &storybeat.Beat{ID: "late", PlayerAction: "x", Narrative: "Too late."}, nil
		})

	beat := s.service.SubmitAction(s.ctx, "open the gate")
	s.Nil(beat)
	s.Empty(s.service.Beats())
}

func (s *StoryServiceTestSuite) TestBeatHistoryCap() {
	svc, err := storyservice.NewService(&storyservice.ServiceConfig{
		Campaign:      campaign.Emberfall,
		Repository:    s.repo,
		UUIDGenerator: &uuid.SequentialGenerator{Prefix: "id"},
		RandSource:    rand.NewSource(1),
	})
	s.Require().NoError(err)
	s.Require().NoError(svc.StartCharacter(s.ctx, testutils.CreateTestHero("hero-1", "Wren")))

	for i := 0; i < storybeat.MaxBeats+5; i++ {
		s.Require().NotNil(svc.SubmitAction(s.ctx, fmt.Sprintf("step %d", i)))
	}

	beats := svc.Beats()
	s.Len(beats, storybeat.MaxBeats)
	s.Equal("step 5", beats[0].PlayerAction)
}

func (s *StoryServiceTestSuite) TestIsComplete() {
	s.False(s.service.IsComplete(), "no hero")

	s.startHero()
	s.False(s.service.IsComplete())

	// An ending beat closes the run
	s.client.EXPECT().
		Advance(gomock.Any(), gomock.Any()).
		Return(&storybeat.Beat{
			ID:           "final",
			PlayerAction: "cleanse the heart",
			Narrative:    "The Heart steadies at last.",
			Delta:        &storybeat.Delta{IsEnding: true},
		}, nil)
	s.Require().NotNil(s.service.SubmitAction(s.ctx, "cleanse the heart"))
	s.True(s.service.IsComplete())
}

func (s *StoryServiceTestSuite) TestIsComplete_TerminalFlag() {
	h := testutils.CreateTestHero("hero-1", "Wren")
	h.Flags["heart_shattered"] = true
	s.Require().NoError(s.service.StartCharacter(s.ctx, h))
	s.True(s.service.IsComplete())
}

func (s *StoryServiceTestSuite) TestRestoreRoundTrip() {
	s.startHero()

	s.client.EXPECT().
		Advance(gomock.Any(), gomock.Any()).
		Return(&storybeat.Beat{ID: "beat-1", PlayerAction: "scout", Narrative: "You scout ahead."}, nil)
	s.Require().NotNil(s.service.SubmitAction(s.ctx, "scout"))
	savedEntries := len(s.service.LogEntries())

	svc, err := storyservice.NewService(&storyservice.ServiceConfig{
		Campaign:      campaign.Emberfall,
		Repository:    s.repo,
		UUIDGenerator: &uuid.SequentialGenerator{Prefix: "id2"},
		RandSource:    rand.NewSource(1),
	})
	s.Require().NoError(err)

	ok, err := svc.Restore(s.ctx, "hero-1")
	s.Require().NoError(err)
	s.True(ok)
	s.Len(svc.Beats(), 1)
	s.Len(svc.LogEntries(), savedEntries)

	ok, err = svc.Restore(s.ctx, "nobody")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *StoryServiceTestSuite) TestReset() {
	s.startHero()
	s.Require().NoError(s.service.Reset(s.ctx))

	s.Empty(s.service.Beats())
	s.Empty(s.service.LogEntries())
	s.False(s.service.IsComplete())

	snap, err := s.repo.Load(s.ctx, "hero-1")
	s.Require().NoError(err)
	s.Nil(snap)
}
