package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/emberfall/ascent/internal/clients/narrator"
	"github.com/emberfall/ascent/internal/config"
	"github.com/emberfall/ascent/internal/domain/campaign"
	"github.com/emberfall/ascent/internal/domain/rules"
	"github.com/emberfall/ascent/internal/repositories/snapshot"
	"github.com/emberfall/ascent/internal/services/builder"
	"github.com/emberfall/ascent/internal/services/scene"
	storyservice "github.com/emberfall/ascent/internal/services/story"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	repo := buildRepository(cfg)

	var narratorClient narrator.Client
	if cfg.Narrator.BaseURL != "" {
		client, clientErr := narrator.NewHTTPClient(&narrator.Config{
			BaseURL: cfg.Narrator.BaseURL,
			APIKey:  cfg.Narrator.APIKey,
			Timeout: time.Duration(cfg.Narrator.TimeoutSeconds) * time.Second,
		})
		if clientErr != nil {
			log.Fatalf("Failed to create narrator client: %v", clientErr)
		}
		narratorClient = client
		log.Printf("Narrator configured at %s", cfg.Narrator.BaseURL)
	} else {
		log.Println("No NARRATOR_URL found, freeform mode will narrate locally")
	}

	buildSvc := builder.NewService(&builder.ServiceConfig{})

	sceneSvc, err := scene.NewService(&scene.ServiceConfig{
		Campaign:   campaign.Emberfall,
		Repository: repo,
	})
	if err != nil {
		log.Fatalf("Failed to create scene service: %v", err)
	}

	storySvc, err := storyservice.NewService(&storyservice.ServiceConfig{
		Campaign:   campaign.Emberfall,
		Repository: repo,
		Client:     narratorClient,
	})
	if err != nil {
		log.Fatalf("Failed to create story service: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	session := &replSession{
		builder: buildSvc,
		scenes:  sceneSvc,
		stories: storySvc,
	}

	group.Go(func() error {
		defer stop()
		return session.run(ctx)
	})
	group.Go(func() error {
		<-ctx.Done()
		return nil
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("Engine stopped: %v", err)
	}
	log.Println("Goodbye.")
}

func buildRepository(cfg *config.Config) snapshot.Repository {
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Printf("Failed to parse Redis URL: %v", err)
			log.Println("Falling back to local file storage")
		} else {
			client := redis.NewClient(opts)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if pingErr := client.Ping(ctx).Err(); pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to local file storage")
			} else {
				log.Println("Using Redis for persistence")
				return snapshot.NewRedisRepository(&snapshot.RedisRepoConfig{Client: client})
			}
		}
	}

	log.Printf("Using local snapshot storage in %s/", cfg.Storage.Dir)
	return snapshot.NewFileRepository(&snapshot.FileRepoConfig{Dir: cfg.Storage.Dir})
}

type replSession struct {
	builder builder.Service
	scenes  scene.Service
	stories storyservice.Service
}

func (r *replSession) run(ctx context.Context) error {
	fmt.Printf("%s\n%s\nType 'help' for commands.\n\n",
		campaign.Emberfall.Title, campaign.Emberfall.Synopsis)

	scanner := bufio.NewScanner(os.Stdin)
	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Print("> ")
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := r.handle(ctx, line); quit {
				return nil
			}
		}
	}
}

func (r *replSession) handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	command, rest := fields[0], strings.TrimSpace(strings.TrimPrefix(line, fields[0]))

	switch command {
	case "help":
		fmt.Println(`Commands:
  new <name>         create a hero (human fighter soldier) and start the campaign
  resume <hero id>   resume a saved run
  look               show the current scene and its choices
  choose <choice>    pick a choice in the current scene
  do <action>        act freely (freeform narrator mode)
  say <text>         speak in character (recorded in the conversation log)
  roll <formula>     roll dice, e.g. 2d6+1
  sheet              show the hero sheet
  reset              abandon the run and clear the save
  quit               exit`)
	case "new":
		r.newHero(ctx, rest)
	case "resume":
		r.resume(ctx, rest)
	case "look":
		r.look()
	case "choose":
		r.choose(ctx, rest)
	case "do":
		r.submit(ctx, rest)
	case "say":
		if rest == "" {
			fmt.Println("Usage: say <text>")
		} else {
			r.scenes.RecordPlayerLine(rest)
			fmt.Printf("You say: %s\n", rest)
		}
	case "roll":
		r.roll(ctx, rest)
	case "sheet":
		r.sheet()
	case "reset":
		if err := r.scenes.Reset(ctx); err != nil {
			fmt.Printf("Reset failed: %v\n", err)
		}
		_ = r.stories.Reset(ctx)
		fmt.Println("The run is abandoned.")
	case "quit", "exit":
		return true
	default:
		fmt.Printf("Unknown command %q. Type 'help'.\n", command)
	}
	return false
}

func (r *replSession) newHero(ctx context.Context, name string) {
	if name == "" {
		fmt.Println("Usage: new <name>")
		return
	}

	scores := make(map[rules.Ability]int, len(rules.Abilities))
	for i, ability := range rules.Abilities {
		scores[ability] = rules.StandardAbilityArray[i]
	}

	output, err := r.builder.BuildHero(ctx, &builder.BuildInput{
		Name:           name,
		RaceID:         "human",
		ClassID:        "fighter",
		BackgroundID:   "soldier",
		BaseScores:     scores,
		SelectedSkills: []rules.Skill{rules.SkillPerception, rules.SkillSurvival},
	})
	if err != nil {
		fmt.Printf("Could not build hero: %v\n", err)
		return
	}

	if err := r.scenes.StartCharacter(ctx, output.Hero); err != nil {
		fmt.Printf("Could not start: %v\n", err)
		return
	}
	if err := r.stories.StartCharacter(ctx, output.Hero); err != nil {
		fmt.Printf("Could not start freeform mode: %v\n", err)
		return
	}

	fmt.Printf("Hero %s is ready (id %s).\n\n", output.Hero.Name, output.Hero.ID)
	r.look()
}

func (r *replSession) resume(ctx context.Context, heroID string) {
	if heroID == "" {
		fmt.Println("Usage: resume <hero id>")
		return
	}
	// The snapshot holds whichever mode last saved; offer it to both
	sceneOK, err := r.scenes.Restore(ctx, heroID)
	if err != nil {
		fmt.Printf("Resume failed: %v\n", err)
		return
	}
	storyOK, err := r.stories.Restore(ctx, heroID)
	if err != nil {
		fmt.Printf("Resume failed: %v\n", err)
		return
	}
	if !sceneOK && !storyOK {
		fmt.Println("No saved run found.")
		return
	}
	fmt.Println("Run restored.")
	r.look()
}

func (r *replSession) look() {
	current := r.scenes.CurrentScene()
	if current == nil {
		if r.scenes.IsComplete() {
			fmt.Println("The campaign is complete. 'reset' to play again.")
		} else {
			fmt.Println("No run in progress. 'new <name>' to begin.")
		}
		return
	}

	fmt.Printf("\n== %s ==\n%s\n\n", current.Title, current.Narrative)
	for _, view := range r.scenes.VisibleChoices() {
		marker := " "
		if view.Disabled {
			marker = "x"
		}
		fmt.Printf(" [%s] %s - %s\n", marker, view.Choice.ID, view.Choice.Label)
	}
}

func (r *replSession) choose(ctx context.Context, choiceID string) {
	if choiceID == "" {
		fmt.Println("Usage: choose <choice>")
		return
	}
	result, err := r.scenes.ChooseOption(ctx, choiceID)
	if err != nil {
		fmt.Printf("Choice failed: %v\n", err)
		return
	}
	if result == nil {
		fmt.Println("Nothing happens.")
		return
	}
	if result.Check != nil {
		fmt.Println(result.Check.Summary())
	}
	fmt.Println(result.Outcome.Narrative)
	if result.Complete {
		fmt.Println("\nThe campaign is complete.")
		return
	}
	r.look()
}

func (r *replSession) submit(ctx context.Context, action string) {
	if action == "" {
		fmt.Println("Usage: do <action>")
		return
	}
	beat := r.stories.SubmitAction(ctx, action)
	if beat == nil {
		fmt.Println("Nothing happens. Is a run in progress?")
		return
	}
	fmt.Println(beat.Narrative)
	for _, reply := range beat.NPCReplies {
		fmt.Printf("  %s: %s\n", reply.NPCID, reply.Text)
	}
	if notice := r.stories.Notice(); notice != "" {
		fmt.Printf("(%s)\n", notice)
	}
	if r.stories.IsComplete() {
		fmt.Println("\nThe story has reached its ending.")
	}
}

func (r *replSession) roll(ctx context.Context, formula string) {
	if formula == "" {
		fmt.Println("Usage: roll <formula>")
		return
	}
	result, err := r.scenes.RollFlavor(ctx, formula)
	if err != nil {
		fmt.Printf("Roll failed: %v\n", err)
		return
	}
	fmt.Printf("%s = %d %v\n", result.Formula, result.Total, result.Rolls)
}

func (r *replSession) sheet() {
	h := r.scenes.Hero()
	if h == nil {
		fmt.Println("No hero yet.")
		return
	}
	fmt.Printf("%s, level %d %s %s (%s)\n", h.Name, h.Level, h.RaceID, h.ClassID, h.BackgroundID)
	fmt.Printf("HP %d  AC %d  Speed %d\n", h.Resources.HitPoints, h.ArmorClass, h.Speed)
	for _, ability := range rules.Abilities {
		fmt.Printf("  %-12s %2d (%+d)\n", rules.AbilityLabels[ability],
			h.AbilityScores.Get(ability), h.AbilityScores.Modifier(ability))
	}
	if len(h.Status) > 0 {
		fmt.Printf("Status: %v\n", h.Status)
	}
	if len(h.Notes) > 0 {
		fmt.Println("Notes:")
		for _, note := range h.Notes {
			fmt.Printf("  - %s\n", note)
		}
	}
}
