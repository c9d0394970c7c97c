package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footadmin/footadmin/pkg/types"
)

var fixedNow = time.Date(2024, 5, 1, 12, 30, 0, 0, time.Local)

func newTeamStore(t *testing.T, opts ...Option) (*Store[team], string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "equipos.csv")
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	s, err := New[team](path, teamCodec{}, opts...)
	require.NoError(t, err)
	return s, path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestStoreScenario(t *testing.T) {
	s, _ := newTeamStore(t)

	all, err := s.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	created, err := s.Create(team{Nombre: "Argentina", Pais: "Argentina", Enfr: 5})
	require.NoError(t, err)
	assert.Equal(t, types.ID("1"), created.ID)

	_, err = s.Create(team{ID: "1", Nombre: "Argentina", Pais: "Argentina", Enfr: 5})
	assert.ErrorIs(t, err, types.ErrDuplicate)

	_, err = s.Update("1", team{Nombre: "Argentina Selección", Pais: "Argentina", Enfr: 5})
	require.NoError(t, err)
	got, err := s.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Argentina Selección", got.Nombre)

	require.NoError(t, s.Delete("1"))
	_, err = s.GetByID("1")
	assert.ErrorIs(t, err, types.ErrNotFound)

	trash, err := s.Trash()
	require.NoError(t, err)
	require.Len(t, trash, 1)
	assert.Equal(t, types.ID("1"), trash[0].Record.ID)
	assert.Equal(t, "Argentina Selección", trash[0].Record.Nombre)
}

func TestCreateAllocatesOneToN(t *testing.T) {
	s, _ := newTeamStore(t)
	for i := 1; i <= 5; i++ {
		rec, err := s.Create(team{Nombre: fmt.Sprintf("Equipo %d", i)})
		require.NoError(t, err)
		assert.Equal(t, types.ID(strconv.Itoa(i)), rec.ID)
	}

	all, err := s.GetAll()
	require.NoError(t, err)
	ids := make([]types.ID, len(all))
	for i, r := range all {
		ids[i] = r.ID
	}
	assert.Equal(t, []types.ID{"1", "2", "3", "4", "5"}, ids)
}

func TestCreateAfterGapUsesMaxPlusOne(t *testing.T) {
	s, path := newTeamStore(t)
	writeFile(t, path, "id,nombre\n3,Peru\n9,Chile\n")

	rec, err := s.Create(team{Nombre: "Ecuador"})
	require.NoError(t, err)
	assert.Equal(t, types.ID("10"), rec.ID)
}

func TestNotFound(t *testing.T) {
	tests := []struct {
		name    string
		content string
		id      types.ID
	}{
		{"empty table", "", "1"},
		{"header only", "id,nombre\n", "1"},
		{"absent id", "id,nombre\n1,Peru\n", "2"},
		{"non-integer id", "id,nombre\n1,Peru\n", "uno"},
		{"blank id", "id,nombre\n1,Peru\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, path := newTeamStore(t)
			if tt.content != "" {
				writeFile(t, path, tt.content)
			}

			_, err := s.GetByID(tt.id)
			assert.ErrorIs(t, err, types.ErrNotFound)
			_, err = s.Update(tt.id, team{Nombre: "X"})
			assert.ErrorIs(t, err, types.ErrNotFound)
			err = s.Delete(tt.id)
			assert.ErrorIs(t, err, types.ErrNotFound)

			var nf *types.NotFoundError
			require.ErrorAs(t, err, &nf)
			assert.Equal(t, "equipos", nf.Kind)
		})
	}
}

func TestDuplicateLeavesTableUnchanged(t *testing.T) {
	s, path := newTeamStore(t)
	_, err := s.Create(team{Nombre: "Brasil"})
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = s.Create(team{ID: "01", Nombre: "Otro"})
	var dup *types.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, types.ID("1"), dup.ID)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	all, err := s.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Brasil", all[0].Nombre)
}

func TestExplicitIDIsCanonicalized(t *testing.T) {
	s, _ := newTeamStore(t)
	rec, err := s.Create(team{ID: " 07", Nombre: "Uruguay"})
	require.NoError(t, err)
	assert.Equal(t, types.ID("7"), rec.ID)

	got, err := s.GetByID("007")
	require.NoError(t, err)
	assert.Equal(t, "Uruguay", got.Nombre)

	_, err = s.Create(team{ID: "siete", Nombre: "Uruguay"})
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestCreateRoundTrip(t *testing.T) {
	s, _ := newTeamStore(t)
	nota := "  con espacios "
	in := team{
		Nombre:  "Paraguay",
		Pais:    "Paraguay",
		Enfr:    0,
		Activo:  false,
		Fundado: types.NewDate(1, time.January, 1),
		Nota:    &nota,
	}
	created, err := s.Create(in)
	require.NoError(t, err)

	got, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "0001-01-01", got.Fundado.String())
	require.NotNil(t, got.Nota)
	assert.Equal(t, nota, *got.Nota)
}

func TestWhitespaceOptionalTextIsStoredAsNull(t *testing.T) {
	s, _ := newTeamStore(t)
	blank := "   "
	created, err := s.Create(team{Nombre: "Chile", Nota: &blank})
	require.NoError(t, err)
	assert.Nil(t, created.Nota)

	got, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := s.Update(created.ID, team{Nombre: "Chile", Nota: &blank})
	require.NoError(t, err)
	assert.Nil(t, updated.Nota)
}

func TestCreateValidatesConstraints(t *testing.T) {
	tests := []struct {
		name      string
		rec       team
		wantField string
	}{
		{"missing name", team{Nombre: ""}, "nombre"},
		{"negative count", team{Nombre: "Bolivia", Enfr: -1}, "enfrentamientos"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, path := newTeamStore(t)
			_, err := s.Create(tt.rec)
			var verr *types.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.NoFileExists(t, path)
		})
	}
}

func TestUpdateKeepsIdentityAndRecordsPreUpdateValues(t *testing.T) {
	s, _ := newTeamStore(t)
	_, err := s.Create(team{Nombre: "Venezuela", Enfr: 2})
	require.NoError(t, err)

	updated, err := s.Update("1", team{ID: "99", Nombre: "Venezuela", Enfr: 3})
	require.NoError(t, err)
	assert.Equal(t, types.ID("1"), updated.ID)

	hist, err := s.History()
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, types.ActionCreate, hist[0].Action)
	assert.Equal(t, types.ActionUpdate, hist[1].Action)
	assert.Equal(t, int64(2), hist[1].Record.Enfr)
	assert.True(t, hist[1].Timestamp.Equal(fixedNow))
}

func TestDeleteMovesRecordToTrashAndHistory(t *testing.T) {
	s, _ := newTeamStore(t)
	_, err := s.Create(team{Nombre: "Chile", Pais: "Chile", Enfr: 40})
	require.NoError(t, err)
	kept, err := s.Create(team{Nombre: "Peru"})
	require.NoError(t, err)

	require.NoError(t, s.Delete("1"))

	_, err = s.GetByID("1")
	assert.ErrorIs(t, err, types.ErrNotFound)
	all, err := s.GetAll()
	require.NoError(t, err)
	assert.Equal(t, []team{kept}, all)

	trash, err := s.Trash()
	require.NoError(t, err)
	require.Len(t, trash, 1)
	assert.Equal(t, "Chile", trash[0].Record.Nombre)
	assert.Equal(t, int64(40), trash[0].Record.Enfr)
	assert.True(t, trash[0].DeletedAt.Equal(fixedNow))

	hist, err := s.History()
	require.NoError(t, err)
	require.Len(t, hist, 3)
	assert.Equal(t, types.ActionDelete, hist[2].Action)
	assert.Equal(t, types.ID("1"), hist[2].Record.ID)
}

func TestGetAllIsRepeatable(t *testing.T) {
	s, path := newTeamStore(t)
	writeFile(t, path, "id,nombre,pais\n1,Peru,Peru\n2,Chile,Chile\n")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	first, err := s.GetAll()
	require.NoError(t, err)
	for range 3 {
		again, err := s.GetAll()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSkipPolicy(t *testing.T) {
	const content = "id,nombre,enfrentamientos\n" +
		"1,Peru,3\n" +
		"2,Chile,muchos\n" +
		"1,Repetido,0\n" +
		"3,Ecuador,1\n"

	t.Run("skip drops malformed and repeated rows", func(t *testing.T) {
		s, path := newTeamStore(t, WithSkipPolicy(types.SkipMalformedRows))
		writeFile(t, path, content)
		all, err := s.GetAll()
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Peru", all[0].Nombre)
		assert.Equal(t, "Ecuador", all[1].Nombre)
	})

	t.Run("strict fails on the first malformed row", func(t *testing.T) {
		s, path := newTeamStore(t, WithSkipPolicy(types.Strict))
		writeFile(t, path, content)
		_, err := s.GetAll()
		var verr *types.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, 2, verr.Row)
		assert.Equal(t, "enfrentamientos", verr.Field)
	})

	t.Run("strict rejects a repeated identity", func(t *testing.T) {
		s, path := newTeamStore(t, WithSkipPolicy(types.Strict))
		writeFile(t, path, "id,nombre\n1,Peru\n1,Chile\n")
		_, err := s.GetAll()
		var verr *types.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, 2, verr.Row)
		assert.Equal(t, "id", verr.Field)
	})

	t.Run("strict rejects unparsable text", func(t *testing.T) {
		s, path := newTeamStore(t, WithSkipPolicy(types.Strict))
		writeFile(t, path, "id,nombre\n1,\"Peru\n")
		_, err := s.GetAll()
		assert.ErrorIs(t, err, types.ErrValidation)
	})

	t.Run("unknown policy is rejected", func(t *testing.T) {
		_, err := New[team](filepath.Join(t.TempDir(), "equipos.csv"), teamCodec{}, WithSkipPolicy("lenient"))
		assert.ErrorIs(t, err, types.ErrSkipPolicyUnknown)
	})
}

func TestLoadIgnoresUnknownColumnsAndDefaultsMissingOnes(t *testing.T) {
	s, path := newTeamStore(t)
	writeFile(t, path, "\ufeffnombre,extra,id\nPeru,x,4\n")

	got, err := s.GetByID("4")
	require.NoError(t, err)
	assert.Equal(t, "Peru", got.Nombre)
	assert.Equal(t, int64(0), got.Enfr)
	assert.True(t, got.Activo)
	assert.Equal(t, "1900-01-01", got.Fundado.String())
	assert.Nil(t, got.Nota)
}

func TestAlternateDelimiter(t *testing.T) {
	s, path := newTeamStore(t, WithDelimiter(';'))
	_, err := s.Create(team{Nombre: "Costa Rica, CR"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "id;nombre;pais")
	assert.Contains(t, string(data), "1;Costa Rica, CR;")
}

func TestBooleanSpellingsOnLoad(t *testing.T) {
	s, path := newTeamStore(t)
	writeFile(t, path, "id,nombre,activo\n1,a,True\n2,b,FALSE\n3,c,yes\n4,d,no\n")
	all, err := s.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.True(t, all[0].Activo)
	assert.False(t, all[1].Activo)
	assert.True(t, all[2].Activo)
	assert.False(t, all[3].Activo)
}

func TestHistoryPolicy(t *testing.T) {
	tests := []struct {
		name       string
		policy     string
		wantReport bool
	}{
		{"best effort hides failure", types.HistoryBestEffort, false},
		{"report returns warning", types.HistoryReport, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, path := newTeamStore(t, WithHistoryPolicy(tt.policy))
			// A directory where the history file belongs makes every append fail.
			require.NoError(t, os.Mkdir(sidePath(path, "_historial"), 0o755))

			rec, err := s.Create(team{Nombre: "Mexico"})
			if tt.wantReport {
				require.Error(t, err)
				assert.True(t, types.IsWarning(err))
				assert.ErrorIs(t, err, types.ErrHistoryWrite)
				var aux *types.AuxWriteError
				require.ErrorAs(t, err, &aux)
				assert.Equal(t, types.ID("1"), aux.ID)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, types.ID("1"), rec.ID)

			got, err := s.GetByID("1")
			require.NoError(t, err)
			assert.Equal(t, "Mexico", got.Nombre)
		})
	}
}

func TestTrashFailureIsWarning(t *testing.T) {
	s, path := newTeamStore(t)
	_, err := s.Create(team{Nombre: "Haiti"})
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(sidePath(path, "_papelera"), 0o755))

	err = s.Delete("1")
	require.Error(t, err)
	assert.True(t, types.IsWarning(err))
	assert.ErrorIs(t, err, types.ErrTrashWrite)
	assert.NotErrorIs(t, err, types.ErrHistoryWrite)

	_, err = s.GetByID("1")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestPersistenceFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "equipos.csv")
	s, err := New[team](path, teamCodec{})
	require.NoError(t, err)

	_, err = s.Create(team{Nombre: "Jamaica"})
	var perr *types.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "write", perr.Op)
	assert.False(t, types.IsWarning(err))
}

func TestWritesLeaveNoTempFiles(t *testing.T) {
	s, path := newTeamStore(t)
	for i := range 3 {
		_, err := s.Create(team{Nombre: fmt.Sprintf("E%d", i)})
		require.NoError(t, err)
	}
	require.NoError(t, s.Delete("2"))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	assert.Equal(t, []string{"equipos.csv", "equipos_historial.csv", "equipos_papelera.csv"}, names)
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	s, _ := newTeamStore(t)
	const n = 20

	var wg sync.WaitGroup
	ids := make([]types.ID, n)
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := s.Create(team{Nombre: fmt.Sprintf("E%d", i)})
			ids[i], errs[i] = rec.ID, err
		}()
	}
	wg.Wait()

	seen := make(map[types.ID]bool, n)
	for i := range n {
		require.NoError(t, errs[i])
		assert.False(t, seen[ids[i]], "duplicate id %s", ids[i])
		seen[ids[i]] = true
	}
	all, err := s.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, n)
	for i := 1; i <= n; i++ {
		assert.True(t, seen[types.ID(strconv.Itoa(i))])
	}
}

func TestConcurrentModifiesAllApply(t *testing.T) {
	s, _ := newTeamStore(t)
	created, err := s.Create(team{Nombre: "Bolivia"})
	require.NoError(t, err)
	const n = 20

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = s.Modify(created.ID, func(rec team) (team, error) {
				rec.Enfr++
				return rec, nil
			})
		}()
	}
	wg.Wait()

	for i := range n {
		require.NoError(t, errs[i])
	}
	got, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), got.Enfr)

	hist, err := s.History()
	require.NoError(t, err)
	assert.Len(t, hist, n+1)
}

func TestModify(t *testing.T) {
	s, _ := newTeamStore(t)
	_, err := s.Create(team{Nombre: "Ecuador", Enfr: 4})
	require.NoError(t, err)

	t.Run("change error aborts", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := s.Modify("1", func(rec team) (team, error) {
			rec.Enfr = 100
			return rec, boom
		})
		require.ErrorIs(t, err, boom)
		got, err := s.GetByID("1")
		require.NoError(t, err)
		assert.Equal(t, int64(4), got.Enfr)
	})

	t.Run("invalid result rejected", func(t *testing.T) {
		_, err := s.Modify("1", func(rec team) (team, error) {
			rec.Nombre = ""
			return rec, nil
		})
		require.ErrorIs(t, err, types.ErrValidation)
		got, err := s.GetByID("1")
		require.NoError(t, err)
		assert.Equal(t, "Ecuador", got.Nombre)
	})

	t.Run("missing id", func(t *testing.T) {
		called := false
		_, err := s.Modify("9", func(rec team) (team, error) {
			called = true
			return rec, nil
		})
		require.ErrorIs(t, err, types.ErrNotFound)
		assert.False(t, called)
	})

	t.Run("identity kept", func(t *testing.T) {
		updated, err := s.Modify("01", func(rec team) (team, error) {
			rec.ID = "7"
			rec.Enfr = 5
			return rec, nil
		})
		require.NoError(t, err)
		assert.Equal(t, types.ID("1"), updated.ID)
		assert.Equal(t, int64(5), updated.Enfr)
	})
}

func TestFetch(t *testing.T) {
	s, path := newTeamStore(t)
	writeFile(t, path, "id,nombre,pais,activo\n1,Peru,Peru,true\n2,Chile,Chile,false\n3,Bolivia,Bolivia,1\n")

	got, err := s.Fetch(map[string]string{"activo": "yes"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Peru", got[0].Nombre)
	assert.Equal(t, "Bolivia", got[1].Nombre)

	got, err = s.Fetch(map[string]string{"id": "02"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Chile", got[0].Nombre)

	got, err = s.Fetch(nil)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = s.Fetch(map[string]string{"color": "rojo"})
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = s.Fetch(map[string]string{"enfrentamientos": "x"})
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestRestore(t *testing.T) {
	s, _ := newTeamStore(t)
	_, err := s.Create(team{Nombre: "Panama", Enfr: 1})
	require.NoError(t, err)
	_, err = s.Update("1", team{Nombre: "Panamá", Enfr: 2})
	require.NoError(t, err)
	require.NoError(t, s.Delete("1"))

	restored, err := s.Restore("1")
	require.NoError(t, err)
	assert.Equal(t, "Panamá", restored.Nombre)

	got, err := s.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, restored, got)

	_, err = s.Restore("1")
	assert.ErrorIs(t, err, types.ErrDuplicate)
	_, err = s.Restore("5")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestTextIdentityUsesUUIDs(t *testing.T) {
	dir := t.TempDir()
	s, err := New[match](filepath.Join(dir, "partidos.csv"), matchCodec{})
	require.NoError(t, err)

	a, err := s.Create(match{Local: "Colombia"})
	require.NoError(t, err)
	b, err := s.Create(match{Local: "Colombia"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, string(a.ID), 36)

	explicit, err := s.Create(match{ID: "  final-2024 ", Local: "Argentina"})
	require.NoError(t, err)
	assert.Equal(t, types.ID("final-2024"), explicit.ID)

	got, err := s.GetByID("final-2024")
	require.NoError(t, err)
	assert.Equal(t, "Argentina", got.Local)
}

func TestDisabledAuditFiles(t *testing.T) {
	s, path := newTeamStore(t, WithoutHistory(), WithoutTrash())
	_, err := s.Create(team{Nombre: "Canada"})
	require.NoError(t, err)
	require.NoError(t, s.Delete("1"))

	hist, err := s.History()
	require.NoError(t, err)
	assert.Empty(t, hist)
	assert.NoFileExists(t, sidePath(path, "_historial"))
	assert.NoFileExists(t, sidePath(path, "_papelera"))

	_, err = s.Restore("1")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestCustomAuditPaths(t *testing.T) {
	dir := t.TempDir()
	hp := filepath.Join(dir, "audit.csv")
	tp := filepath.Join(dir, "bin.csv")
	s, path := newTeamStore(t, WithHistoryPath(hp), WithTrashPath(tp))
	_, err := s.Create(team{Nombre: "Honduras"})
	require.NoError(t, err)
	require.NoError(t, s.Delete("1"))

	assert.FileExists(t, hp)
	assert.FileExists(t, tp)
	assert.NoFileExists(t, sidePath(path, "_historial"))
}

func TestCacheTTL(t *testing.T) {
	now := fixedNow
	s, path := newTeamStore(t, WithCacheTTL(time.Minute), WithClock(func() time.Time { return now }))
	writeFile(t, path, "id,nombre\n1,Peru\n")

	all, err := s.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)

	writeFile(t, path, "id,nombre\n1,Peru\n2,Chile\n")
	all, err = s.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1, "cached table served within ttl")

	now = now.Add(time.Minute)
	all, err = s.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCacheReflectsOwnWrites(t *testing.T) {
	s, _ := newTeamStore(t, WithCacheTTL(time.Hour))
	_, err := s.Create(team{Nombre: "Peru"})
	require.NoError(t, err)

	all, err := s.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)

	all[0].Nombre = "mutated"
	again, err := s.GetAll()
	require.NoError(t, err)
	assert.Equal(t, "Peru", again[0].Nombre)
}

func TestErrorsAreDistinguishable(t *testing.T) {
	s, _ := newTeamStore(t)
	_, err := s.GetByID("1")
	assert.True(t, errors.Is(err, types.ErrNotFound))
	assert.False(t, errors.Is(err, types.ErrDuplicate))
	assert.False(t, errors.Is(err, types.ErrValidation))
	assert.False(t, errors.Is(err, types.ErrPersistence))
}
