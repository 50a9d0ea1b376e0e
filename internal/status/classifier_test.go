package status

import (
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"
)

var errFake = errors.New("fake failure")

// fakeRepository serves canned primitives and counts divergence lookups.
type fakeRepository struct {
	entries   []Entry
	statusErr error

	head    Head
	headErr error

	branchErr   error
	upstream    string
	upstreamErr error
	ids         map[string]string

	headCalls int
}

func (f *fakeRepository) Path() string { return "/tmp/fake" }

func (f *fakeRepository) Statuses() ([]Entry, error) {
	return f.entries, f.statusErr
}

func (f *fakeRepository) Head() (Head, error) {
	f.headCalls++
	return f.head, f.headErr
}

func (f *fakeRepository) LocalBranch(name string) (string, error) {
	if f.branchErr != nil {
		return "", f.branchErr
	}
	return "refs/heads/" + name, nil
}

func (f *fakeRepository) Upstream(string) (string, error) {
	if f.upstreamErr != nil {
		return "", f.upstreamErr
	}
	return f.upstream, nil
}

func (f *fakeRepository) ResolveReference(name string) (string, error) {
	id, ok := f.ids[name]
	if !ok {
		return "", errFake
	}
	return id, nil
}

// tracking returns a fake on branch main tracking origin/main.
func tracking(localID, upstreamID string, entries ...Entry) *fakeRepository {
	return &fakeRepository{
		entries:  entries,
		head:     Head{Name: "refs/heads/main", Branch: "main"},
		upstream: "refs/remotes/origin/main",
		ids: map[string]string{
			"refs/heads/main":          localID,
			"refs/remotes/origin/main": upstreamID,
		},
	}
}

func untracked(path string) Entry { return Entry{Path: path, Flags: WorktreeNew} }

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name     string
		repo     *fakeRepository
		expected GitStatus
	}{
		{
			name:     "no entries, in sync",
			repo:     tracking("a", "a"),
			expected: NoChanges,
		},
		{
			name:     "no entries, diverged is still clean",
			repo:     tracking("a", "b"),
			expected: NoChanges,
		},
		{
			name:     "index new",
			repo:     tracking("a", "a", Entry{Path: "x", Flags: IndexNew}),
			expected: Staged,
		},
		{
			name:     "index deleted",
			repo:     tracking("a", "a", Entry{Path: "x", Flags: IndexDeleted}),
			expected: Staged,
		},
		{
			name:     "staged and modified on same entry",
			repo:     tracking("a", "b", Entry{Path: "x", Flags: IndexModified | WorktreeModified}),
			expected: Staged,
		},
		{
			name:     "worktree modified",
			repo:     tracking("a", "a", Entry{Path: "x", Flags: WorktreeModified}),
			expected: Modified,
		},
		{
			name:     "worktree deleted",
			repo:     tracking("a", "a", Entry{Path: "x", Flags: WorktreeDeleted}),
			expected: Modified,
		},
		{
			name:     "untracked and in sync",
			repo:     tracking("a", "a", untracked("x")),
			expected: NoChanges,
		},
		{
			name:     "untracked and diverged",
			repo:     tracking("a", "b", untracked("x")),
			expected: UnpushedCommits,
		},
		{
			name:     "rename only and diverged",
			repo:     tracking("a", "b", Entry{Path: "x", Flags: IndexRenamed}),
			expected: UnpushedCommits,
		},
		{
			name: "staged anywhere wins",
			repo: tracking("a", "a",
				untracked("a"),
				Entry{Path: "b", Flags: WorktreeModified},
				Entry{Path: "c", Flags: IndexNew},
			),
			expected: Staged,
		},
		{
			name: "later staged entry outranks divergence",
			repo: tracking("a", "b",
				untracked("a"),
				Entry{Path: "b", Flags: IndexNew},
			),
			expected: Staged,
		},
		{
			name: "later modified entry outranks divergence",
			repo: tracking("a", "b",
				untracked("a"),
				Entry{Path: "b", Flags: WorktreeDeleted},
			),
			expected: Modified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := NewClassifier(NewDetector(zaptest.NewLogger(t)), zaptest.NewLogger(t))

			verdict, err := classifier.Classify(tt.repo)
			if err != nil {
				t.Fatalf("Classify failed: %v", err)
			}

			if verdict != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, verdict)
			}
		})
	}
}

func TestClassifier_DivergenceCheckedPerEntry(t *testing.T) {
	repo := tracking("a", "a", untracked("a"), untracked("b"), untracked("c"))
	classifier := NewClassifier(NewDetector(zaptest.NewLogger(t)), zaptest.NewLogger(t))

	if _, err := classifier.Classify(repo); err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if repo.headCalls != 3 {
		t.Errorf("Expected 3 divergence checks, got %d", repo.headCalls)
	}

	repo = tracking("a", "b")
	if _, err := classifier.Classify(repo); err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if repo.headCalls != 0 {
		t.Errorf("Expected no divergence check without entries, got %d", repo.headCalls)
	}
}

func TestClassifier_StatusQueryFailure(t *testing.T) {
	repo := &fakeRepository{statusErr: errFake}
	classifier := NewClassifier(NewDetector(zaptest.NewLogger(t)), zaptest.NewLogger(t))

	_, err := classifier.Classify(repo)
	if !errors.Is(err, ErrStatusQueryFailed) {
		t.Fatalf("Expected ErrStatusQueryFailed, got %v", err)
	}

	if !errors.Is(err, errFake) {
		t.Errorf("Expected underlying error to be wrapped, got %v", err)
	}
}

func TestClassifier_Idempotent(t *testing.T) {
	repo := tracking("a", "b", untracked("x"))
	classifier := NewClassifier(NewDetector(zaptest.NewLogger(t)), zaptest.NewLogger(t))

	first, err := classifier.Classify(repo)
	if err != nil {
		t.Fatal(err)
	}

	second, err := classifier.Classify(repo)
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Errorf("Expected identical verdicts, got %s and %s", first, second)
	}
}
