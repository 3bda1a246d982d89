// Package riftseed seeds a game backend's document store with generated
// RPG items and skills.
//
// A Config is built once at process entry. NewSeeder validates it and
// builds the document store (Firestore or a local badger directory) and the
// text generator (Gemini or an OpenAI-compatible server). Each Seed call runs
// one generate-validate-upload pipeline for a kind:
//
//	seeder, err := riftseed.NewSeeder(ctx, riftseed.NewConfig(
//	    riftseed.WithAIConfig(ai.NewConfig(ai.WithAPIKey(key))),
//	))
//	if err != nil {
//	    return err
//	}
//	defer seeder.Close()
//
//	result, err := seeder.Seed(ctx, core.KindSkill)
package riftseed
