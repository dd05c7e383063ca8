package configuratorService

import (
	"context"
	"errors"
	"io"
	"testing"

	"HorologeGolang/internal/api/configurator"
	"HorologeGolang/internal/entity"
	"HorologeGolang/pkg/catalog"
	"HorologeGolang/pkg/redis"
	"HorologeGolang/pkg/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
)

func newTestService(t *testing.T) IConfiguratorService {
	t.Helper()

	mr := miniredis.RunT(t)
	t.Setenv("REDIS_ADDRESS", mr.Addr())
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("REDIS_DB", "0")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewConfiguratorService(logger, catalog.Default(), redis.New(), utils.New())
}

func TestShareConfigurationRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := configurator.ShareConfigurationRequest{
		Name: "My Diver",
		Config: entity.WatchConfiguration{
			Case:  "case_skx007",
			Dial:  "dial_black",
			Hands: "hands_standard",
			Bezel: "bezel_dive",
		},
	}

	shared, err := svc.ShareConfiguration(ctx, req)
	if err != nil {
		t.Fatalf("ShareConfiguration failed: %v", err)
	}
	if len(shared.Code) != 10 {
		t.Fatalf("expected 10-char share code, got %q", shared.Code)
	}
	if shared.SharePath != "/api/v1/configurations/share/"+shared.Code {
		t.Errorf("unexpected share path %q", shared.SharePath)
	}
	if shared.Token == "" {
		t.Error("expected a non-empty config token")
	}

	resolved, err := svc.ResolveShare(ctx, shared.Code)
	if err != nil {
		t.Fatalf("ResolveShare failed: %v", err)
	}
	if resolved.Name != req.Name {
		t.Errorf("resolved name = %q, want %q", resolved.Name, req.Name)
	}
	if resolved.Config != req.Config {
		t.Errorf("resolved config = %+v, want %+v", resolved.Config, req.Config)
	}

	var fromToken entity.WatchConfiguration
	if err := utils.New().DecodeConfigToken(shared.Token, &fromToken); err != nil {
		t.Fatalf("DecodeConfigToken failed: %v", err)
	}
	if fromToken != req.Config {
		t.Errorf("token config = %+v, want %+v", fromToken, req.Config)
	}
}

func TestResolveShareUnknownCode(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ResolveShare(context.Background(), "nosuchcode")
	if !errors.Is(err, configurator.ErrShareNotFound) {
		t.Fatalf("expected ErrShareNotFound, got %v", err)
	}
}

func TestSaveConfigurationAcknowledgesWithoutStoring(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.SaveConfiguration(ctx, configurator.SaveConfigurationRequest{
		Name:   "Weekend Build",
		Config: entity.WatchConfiguration{Case: "case_skx007", Dial: "dial_blue"},
	})
	if err != nil {
		t.Fatalf("SaveConfiguration failed: %v", err)
	}
	if resp.Message != "Configuration saved successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.ID == "" {
		t.Error("expected a generated configuration ID")
	}

	if err := svc.GetConfiguration(ctx, resp.ID); !errors.Is(err, configurator.ErrConfigurationNotFound) {
		t.Fatalf("expected ErrConfigurationNotFound, got %v", err)
	}
}

func TestExportAssemblesDocument(t *testing.T) {
	svc := newTestService(t)

	doc, err := svc.Export(configurator.ExportConfigurationRequest{
		Name: "Full Build",
		Config: entity.WatchConfiguration{
			Case:  "case_skx007",
			Dial:  "dial_black",
			Hands: "hands_standard",
			Bezel: "bezel_dive",
		},
	})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if doc.Name != "Full Build" {
		t.Errorf("doc name = %q", doc.Name)
	}
	if len(doc.Components) != 4 {
		t.Fatalf("expected 4 resolved components, got %d", len(doc.Components))
	}
	if doc.Components[0].ID != "case_skx007" || doc.Components[3].ID != "bezel_dive" {
		t.Errorf("components out of selection order: %v", doc.Components)
	}
	if len(doc.Price.Breakdown) != 4 {
		t.Errorf("expected 4 price lines, got %d", len(doc.Price.Breakdown))
	}
	if doc.Compatibility.Compatible {
		t.Error("expected the dive bezel pairings to raise compatibility issues")
	}
	if len(doc.Compatibility.Issues) != 2 {
		t.Errorf("expected 2 issues (bezel vs dial and bezel vs hands), got %v", doc.Compatibility.Issues)
	}
	if doc.Token == "" {
		t.Error("expected a non-empty config token")
	}
}

func TestExportToleratesUnknownIDs(t *testing.T) {
	svc := newTestService(t)

	doc, err := svc.Export(configurator.ExportConfigurationRequest{
		Config: entity.WatchConfiguration{Case: "case_skx007", Dial: "dial_ghost"},
	})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(doc.Components) != 1 {
		t.Fatalf("expected the unknown dial to be dropped, got %d components", len(doc.Components))
	}
	if doc.Components[0].ID != "case_skx007" {
		t.Errorf("unexpected component %q", doc.Components[0].ID)
	}
}
