package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/corvind/mangasrc/internal/downloader"
	"github.com/corvind/mangasrc/internal/model"
	"github.com/corvind/mangasrc/internal/source"
	"github.com/corvind/mangasrc/internal/ui"
	"github.com/corvind/mangasrc/internal/util"
	"github.com/spf13/cobra"
)

var (
	flagPullChapter string
	flagPullRange   string
	flagPullList    string
	flagDryRun      bool
	flagSkipBroken  bool
	flagKeepFolders bool
	flagOutput      string
	flagWorkers     int
)

var pullCmd = &cobra.Command{
	Use:   "pull <manga-id>",
	Short: "Download chapters of a manga and package each as a CBZ",
	Args:  cobra.ExactArgs(1),
	RunE:  runPull,
}

func init() {
	pullCmd.Flags().StringVar(&flagPullChapter, "chapter", "", "single chapter by number or listing index (e.g. 28.5)")
	pullCmd.Flags().StringVar(&flagPullRange, "range", "", "chapter range by listing index (e.g. 5-12)")
	pullCmd.Flags().StringVar(&flagPullList, "list", "", "specific listing indices (e.g. 1,3,5)")
	pullCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "show what would be downloaded, don't download")
	pullCmd.Flags().BoolVar(&flagSkipBroken, "skip-broken", false, "skip failed pages instead of failing the chapter")
	pullCmd.Flags().BoolVar(&flagKeepFolders, "keep-folders", false, "keep temporary page folders")
	pullCmd.Flags().StringVar(&flagOutput, "output", "", "output folder for CBZ files")
	pullCmd.Flags().IntVar(&flagWorkers, "workers", 0, "parallel page downloads per chapter")

	rootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, args []string) error {
	cfg, usedPath, err := loadConfig()
	if err != nil {
		return err
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}
	if flagWorkers > 0 {
		cfg.ImageWorkers = flagWorkers
	}
	if flagKeepFolders {
		cfg.KeepFolders = true
	}

	log := ui.NewLogger(cfg.Debug)
	if usedPath != "" {
		fmt.Printf("Config file: %s\n", usedPath)
	}

	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return fmt.Errorf("cannot create output folder: %w", err)
	}

	sess, client, err := newSession(cfg, log)
	if err != nil {
		return err
	}

	ctx := context.Background()
	util.SetupInterruptHandler(cfg.Output)

	id := sess.Adapter().CleanID(args[0])
	manga, err := sess.MangaDetails(ctx, id)
	if err != nil {
		return err
	}

	all, err := sess.ChapterList(ctx, manga)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d chapters listed.\n\n", manga.Title, len(all))

	selected := source.FilterChapters(all, flagPullChapter, flagPullRange, flagPullList)
	if len(selected) == 0 {
		return fmt.Errorf("no chapters selected")
	}

	if flagDryRun {
		fmt.Printf("Dry-run: %d chapters selected.\n\n", len(selected))
		for i, ch := range selected {
			fmt.Printf("%3d) Ch.%g %s\n    %s\n", i+1, ch.Number, ch.Title, ch.ChapterID)
		}
		return nil
	}

	pm := ui.NewProgressManager()

	stats := &ui.PullStats{}
	dl := downloader.New(client, log, cfg.Output, flagSkipBroken)
	start := time.Now()

	for _, ch := range selected {
		pages, err := sess.ChapterPages(ctx, ch)
		if err != nil || len(pages) == 0 {
			log.Errorf("No pages for Ch.%g (%s): %v\n", ch.Number, ch.ChapterID, err)
			continue
		}

		handle := pm.Register(fmt.Sprintf("Ch.%g", ch.Number))
		handle.SetTotal(len(pages))

		base := chapterBaseName(manga, ch)
		tmpFolder := filepath.Join(cfg.Output, base+util.TempSuffix)
		cbzOut := filepath.Join(cfg.Output, base+".cbz")
		referer := sess.Adapter().ChapterURL(ch.ChapterID, source.Context{Domain: cfg.Domain(cfg.Source)})

		files, bytes, err := dl.DownloadPages(ctx, pages, tmpFolder, referer, cfg.ImageWorkers, handle)
		if err != nil {
			log.Errorf("Chapter %g failed: %v\n", ch.Number, err)
			_ = os.RemoveAll(tmpFolder)
			continue
		}

		if err := util.WriteCBZ(files, cbzOut); err != nil {
			log.Errorf("CBZ for %g failed: %v\n", ch.Number, err)
			_ = os.RemoveAll(tmpFolder)
			continue
		}

		if !cfg.KeepFolders {
			util.CleanupFolder(tmpFolder)
		}

		handle.MarkDone()
		stats.RecordChapter(len(files), bytes)
	}
	pm.Close()

	fmt.Println()
	fmt.Println("Pull Summary:")
	fmt.Printf("Chapters: %d\n", stats.Chapters.Load())
	fmt.Printf("Pages:    %d\n", stats.Pages.Load())
	fmt.Printf("Data:     %s\n", util.Human(stats.Bytes.Load()))
	fmt.Printf("Time:     %s\n", time.Since(start).Round(time.Second))

	return nil
}

var reUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

func chapterBaseName(manga model.Manga, ch model.Chapter) string {
	slug := reUnsafe.ReplaceAllString(strings.ToLower(manga.Title), "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		slug = manga.ID
	}

	return fmt.Sprintf("%s_ch_%g", slug, ch.Number)
}
