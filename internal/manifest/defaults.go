package manifest

// Named literal defaults, substituted wholesale for any top-level section the
// document leaves out.

func defaultProject() Project {
	return Project{
		ID:          "new-project",
		Name:        "New Project",
		Tagline:     "Something worth building",
		Description: "A freshly generated project awaiting its first description.",
		Version:     "0.1.0",
		Domain:      "newproject.app",
		Locale:      "en",
	}
}

func defaultTech() Tech {
	return Tech{
		StackPreset: "next-tailwind",
		Persistence: Persistence{Mode: "local"},
		Quality: map[string]bool{
			"linting":    true,
			"testing":    true,
			"typeSafety": true,
		},
	}
}

func defaultSEO() SEO {
	return SEO{
		Indexing: Indexing{
			Enabled: true,
			Sitemap: true,
		},
	}
}

func defaultGrowth() Growth {
	return Growth{
		ViralLoop:  "Invite a collaborator to unlock shared workspaces",
		Onboarding: "Guided three-step first run",
	}
}

func defaultLanding() Landing {
	return Landing{
		// Every listed id carries a content block so a defaults-only
		// manifest lints clean.
		Structure: []string{"hero", "features", "pricing", "faq", "footer"},
		Sections: map[string]Section{
			"hero":     {Headline: "Welcome"},
			"features": {Headline: "What you get"},
			"pricing":  {Headline: "Simple pricing"},
			"faq":      {Headline: "Frequently asked questions"},
			"footer":   {Headline: "Stay in touch"},
		},
	}
}

func defaultAuth() Auth {
	return Auth{Providers: []string{"email"}}
}

func defaultApp() App {
	return App{
		Dashboard: Dashboard{
			Modules: []DashboardModule{
				{ID: "overview", Label: "Overview", Type: "stats"},
				{ID: "activity", Label: "Activity", Type: "feed"},
				{ID: "settings", Label: "Settings", Type: "form"},
			},
		},
	}
}
