package extraction

import (
	"strings"
	"unicode/utf8"
)

const extractSystem = "Du bist ein Experte für Fachterminologie und Glossare eines Universitätsspitals."

const candidateFields = `Für jeden Begriff erstelle einen JSON-Eintrag mit:
- "term": der Begriff/die Abkürzung
- "context": der Fachbereich (wähle aus der Liste oben oder neu)
- "definitionDe": deutsche Definition/Beschreibung
- "definitionEn": englische Übersetzung/Definition (falls möglich)
- "einfacheSprache": Erklärung in einfacher Sprache, die auch Laien verstehen (sehr einfach!)
- "eselsleitern": Array mit 1-2 kreativen Merkhilfen/Eselsbrücken (falls passend, sonst leeres Array)
- "source": Quellenangabe aus dem Dokument (z.B. Dokumenttitel oder Seite)`

const candidateExample = `Beispiel:
{
  "term": "Anamnese",
  "context": "Allgemeinmedizin",
  "definitionDe": "Die Erhebung der Krankengeschichte eines Patienten im Gespräch.",
  "definitionEn": "Medical history - the process of gathering a patient's medical background through conversation.",
  "einfacheSprache": "Das Gespräch, in dem der Arzt fragt, was einem fehlt und welche Krankheiten man früher hatte.",
  "eselsleitern": ["ANA = Alles Nochmal Abfragen"],
  "source": "Seite 3"
}`

func contextHint(contexts []string) string {
	return "WICHTIG: Ordne jeden Begriff einem der folgenden existierenden Kontexte zu, wenn möglich:\n" +
		strings.Join(contexts, ", ") +
		"\n\nFalls ein Begriff absolut nicht in diese Kategorien passt, darfst du eine neue, passende Kategorie erfinden."
}

func documentPrompt(contexts []string) string {
	var b strings.Builder
	b.WriteString("Extrahiere alle Fachbegriffe, Abkürzungen und relevanten Begriffe aus dem folgenden Dokument.\n")
	b.WriteString("Das Glossar ist nicht auf medizinische Begriffe beschränkt, sondern kann Begriffe aus allen Bereichen enthalten, ")
	b.WriteString("die im Dokument vorkommen (z.B. Administration, IT, Pflege).\n\n")
	b.WriteString(contextHint(contexts))
	b.WriteString("\n\n")
	b.WriteString(candidateFields)
	b.WriteString("\n\nAntworte ausschliesslich als JSON-Array. Extrahiere mindestens alle erkennbaren Fachbegriffe.\n\n")
	b.WriteString(candidateExample)
	return b.String()
}

func textPrompt(contexts []string, sourceURL, text string) string {
	return documentPrompt(contexts) + "\n\nContent from " + sourceURL + ":\n\n" + text
}

func proposalPrompt(term, termContext string, contexts []string) string {
	var b strings.Builder
	b.WriteString(`Erstelle einen Glossarvorschlag für den Begriff "`)
	b.WriteString(term)
	b.WriteString(`"`)
	if termContext != "" {
		b.WriteString(` im Kontext "`)
		b.WriteString(termContext)
		b.WriteString(`"`)
	}
	b.WriteString(".\n\nExistierende Kontexte im Glossar: ")
	b.WriteString(strings.Join(contexts, ", "))
	b.WriteString(".\nWenn der Begriff gut in einen davon passt, verwende ihn. Sonst schlage einen neuen, passenden Kontext vor.\n\n")
	b.WriteString(`Liefere:
1. Eine deutsche Definition (definitionDe)
2. Eine englische Definition (definitionEn)
3. Eine Erklärung in einfacher Sprache für Laien (einfacheSprache), SEHR einfach
4. Drei kreative Eselsleitern als Merkhilfen (eselsleitern)
5. Den am besten passenden Kontext (context)

Antworte NUR mit rohem JSON ohne Markdown in dieser Struktur:
{
  "definitionDe": "...",
  "definitionEn": "...",
  "einfacheSprache": "...",
  "eselsleitern": ["...", "...", "..."],
  "context": "..."
}`)
	return b.String()
}

// truncateRunes keeps the first n runes of s.
func truncateRunes(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
