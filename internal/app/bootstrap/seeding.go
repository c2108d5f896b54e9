package bootstrap

import (
	"context"
	"fmt"

	pgInfra "formation-suite-core/internal/infrastructure/database/postgres"
)

// SeedingManager insère les données de référence (grades, diplômes, modes)
// consommées en lecture seule par les moteurs de workflow
type SeedingManager struct {
	db *pgInfra.Client
}

func NewSeedingManager(db *pgInfra.Client) *SeedingManager {
	return &SeedingManager{db: db}
}

type refEntry struct {
	Code          string
	DesignationFR string
	DesignationAR string
}

var gradeSeeds = []refEntry{
	{"PFEP1", "Professeur de formation professionnelle 1er grade", "أستاذ التكوين المهني من الدرجة الأولى"},
	{"PFEP2", "Professeur de formation professionnelle 2e grade", "أستاذ التكوين المهني من الدرجة الثانية"},
	{"PSFEP", "Professeur spécialisé de formation professionnelle", "أستاذ مختص في التكوين المهني"},
}

var diplomeSeeds = []refEntry{
	{"CAP", "Certificat d'aptitude professionnelle", "شهادة الكفاءة المهنية"},
	{"CMP", "Certificat de maîtrise professionnelle", "شهادة التحكم المهني"},
	{"BTP", "Brevet de technicien professionnel", "شهادة تقني"},
	{"BTS", "Brevet de technicien supérieur", "شهادة تقني سامي"},
}

var modeFormationSeeds = []refEntry{
	{"RES", "Résidentiel", "إقامي"},
	{"APP", "Apprentissage", "تمهين"},
	{"DIS", "À distance", "عن بعد"},
}

// CheckSeedDataExists vérifie si les données de référence sont déjà présentes
func (sm *SeedingManager) CheckSeedDataExists(ctx context.Context) (bool, error) {
	var count int
	err := sm.db.QueryRow(ctx, `SELECT COUNT(*) FROM grade`).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("vérification données de référence échouée: %w", err)
	}
	return count > 0, nil
}

// ApplySeeding insère les données de référence manquantes
func (sm *SeedingManager) ApplySeeding(ctx context.Context, alreadySeeded bool) error {
	if alreadySeeded {
		fmt.Printf("[BOOTSTRAP] Données de référence déjà présentes, seeding ignoré\n")
		return nil
	}

	if err := sm.seedTable(ctx, "grade", gradeSeeds); err != nil {
		return err
	}
	if err := sm.seedTable(ctx, "diplome", diplomeSeeds); err != nil {
		return err
	}
	if err := sm.seedTable(ctx, "mode_formation", modeFormationSeeds); err != nil {
		return err
	}

	return nil
}

func (sm *SeedingManager) seedTable(ctx context.Context, table string, entries []refEntry) error {
	for _, e := range entries {
		sql := fmt.Sprintf(`
			INSERT INTO %s (code, designation_fr, designation_ar)
			VALUES ($1, $2, $3)
			ON CONFLICT (code) DO NOTHING
		`, table)
		if err := sm.db.Exec(ctx, sql, e.Code, e.DesignationFR, e.DesignationAR); err != nil {
			return fmt.Errorf("seeding table %s échoué: %w", table, err)
		}
	}
	return nil
}
