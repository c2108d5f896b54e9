package queries

import (
	"strings"
	"testing"
)

// La promotion soumis -> en_preparation voyage avec la mise à jour du
// contenu dans la même requête UPDATE.
func TestUpdateContentPromotionAtomique(t *testing.T) {
	q := MemoireQueries.UpdateContent

	if got := strings.Count(q, "UPDATE"); got != 1 {
		t.Fatalf("UpdateContent contient %d UPDATE, attendu une seule requête", got)
	}

	for _, fragment := range []string{"titre_fr", "titre_ar", "fichierpdf", "'soumis'", "'en_preparation'"} {
		if !strings.Contains(q, fragment) {
			t.Errorf("UpdateContent devrait contenir %q", fragment)
		}
	}
}
