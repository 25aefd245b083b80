package question

import "testing"

func TestToCSV(t *testing.T) {
	tests := []struct {
		name      string
		questions []Question
		want      string
	}{
		{name: "empty", questions: nil, want: "id,name,options,points,published"},
		{
			name:      "single",
			questions: []Question{{ID: 1, Name: "Addition", Type: ShortAnswer, Options: []string{}, Points: 1, Published: true}},
			want:      "id,name,options,points,published\n1,Addition,0,1,true",
		},
		{
			name:      "sample",
			questions: sampleQuestions(),
			want: "id,name,options,points,published\n" +
				"1,Addition,0,1,true\n" +
				"2,Letters,0,1,false\n" +
				"5,Colors,3,1,true\n" +
				"9,Shapes,3,2,false",
		},
		{
			name:      "comma in name is not quoted",
			questions: []Question{{ID: 3, Name: "Red, Green", Type: ShortAnswer}},
			want:      "id,name,options,points,published\n3,Red, Green,0,0,false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToCSV(tt.questions); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestMakeAnswers(t *testing.T) {
	questions := sampleQuestions()
	answers := MakeAnswers(questions)
	if len(answers) != len(questions) {
		t.Fatalf("expected %d answers, got %d", len(questions), len(answers))
	}
	for i, answer := range answers {
		want := Answer{QuestionID: questions[i].ID}
		if answer != want {
			t.Fatalf("answer %d: expected %+v, got %+v", i, want, answer)
		}
	}
	if got := MakeAnswers(nil); len(got) != 0 {
		t.Fatalf("expected no answers, got %+v", got)
	}
}
