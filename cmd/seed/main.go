package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"bibliotheque-backend/internal/config"
	authormodel "bibliotheque-backend/internal/domains/author/model"
	bookmodel "bibliotheque-backend/internal/domains/book/model"
	"bibliotheque-backend/internal/infrastructure/database"
	"bibliotheque-backend/pkg/logger"
)

// Seeds the auteurs and livres collections with the sample catalog,
// wiping both collections first. Authors are inserted before books so the
// book fixtures can reference their ids.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	logger.Init(cfg.App.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewMongoDB(ctx, &cfg.Mongo)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}
	defer db.Close(context.Background())

	authorIDs, err := seedAuthors(ctx, db)
	if err != nil {
		log.Fatalf("❌ Erreur lors du seed des auteurs: %v", err)
	}
	log.Println("✅ Seed des auteurs terminé !")

	if err := seedBooks(ctx, db, authorIDs); err != nil {
		log.Fatalf("❌ Erreur lors du seed des livres: %v", err)
	}
	log.Println("✅ Seed des livres terminé !")
}

func seedAuthors(ctx context.Context, db *database.MongoDB) (map[string]interface{}, error) {
	collection := db.Collection(authormodel.Collection)
	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		return nil, err
	}

	now := time.Now()
	authors := []authormodel.Author{
		{
			Nom:           "Victor Hugo",
			Biographie:    "Écrivain, poète et dramaturge français du XIXe siècle.",
			DateNaissance: date(1802, 2, 26),
			Nationalite:   "Française",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			Nom:           "Antoine de Saint-Exupéry",
			Biographie:    "Écrivain, poète, aviateur et reporter français.",
			DateNaissance: date(1900, 6, 29),
			Nationalite:   "Française",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			Nom:           "Albert Camus",
			Biographie:    "Écrivain, philosophe et journaliste français.",
			DateNaissance: date(1913, 11, 7),
			Nationalite:   "Française",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			Nom:           "Gustave Flaubert",
			Biographie:    "Écrivain français, auteur de Madame Bovary.",
			DateNaissance: date(1821, 12, 12),
			Nationalite:   "Française",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			Nom:           "Stendhal",
			Biographie:    "Écrivain français, auteur du Rouge et le Noir.",
			DateNaissance: date(1783, 1, 23),
			Nationalite:   "Française",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}

	docs := make([]interface{}, len(authors))
	for i, a := range authors {
		docs[i] = a
	}
	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}

	ids := map[string]interface{}{}
	for i, id := range result.InsertedIDs {
		ids[authors[i].Nom] = id
	}
	return ids, nil
}

func seedBooks(ctx context.Context, db *database.MongoDB, authorIDs map[string]interface{}) error {
	collection := db.Collection(bookmodel.Collection)
	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	books := []bson.M{
		{
			"titre":             "El Petit Prince",
			"auteur":            authorIDs["Antoine de Saint-Exupéry"],
			"annee_publication": 1943,
			"genre":             []string{"Conte", "Littérature jeunesse", "Philosophie"},
			"isbn":              "978-2-07-040857-0",
			"editeur":           "Gallimard",
			"langue":            "espagnol",
			"resume":            "La historia de un pequeño príncipe que viaja de planeta en planeta y encuentra adultos con comportamientos extraños, antes de llegar a la Tierra donde se hace amigo de un aviador.",
		},
		{
			"titre":             "Le Petit Prince",
			"auteur":            authorIDs["Antoine de Saint-Exupéry"],
			"annee_publication": 1943,
			"genre":             []string{"Conte", "Littérature jeunesse", "Philosophie"},
			"isbn":              "978-2-07-061275-5",
			"editeur":           "Gallimard",
			"langue":            "français",
			"resume":            "L'histoire d'un petit prince qui voyage de planète en planète et rencontre des adultes aux comportements étranges, avant d'arriver sur Terre où il se lie d'amitié avec un aviateur.",
		},
		{
			"titre":             "Les Misérables",
			"auteur":            authorIDs["Victor Hugo"],
			"annee_publication": 1862,
			"genre":             []string{"Roman", "Drame", "Littérature classique"},
			"isbn":              "978-2-253-09681-4",
			"editeur":           "Le Livre de Poche",
			"langue":            "français",
			"resume":            "L'épopée de Jean Valjean, ancien forçat en quête de rédemption dans la France du XIXe siècle, entre révolutions et misère sociale.",
		},
		{
			"titre":             "L'Étranger",
			"auteur":            authorIDs["Albert Camus"],
			"annee_publication": 1942,
			"genre":             []string{"Roman", "Philosophie", "Existentialisme"},
			"isbn":              "978-2-07-036002-1",
			"editeur":           "Gallimard",
			"langue":            "français",
			"resume":            "Meursault, un homme indifférent à tout, commet un meurtre absurde sur une plage d'Alger et se retrouve face à la justice et à l'absurdité de l'existence.",
		},
		{
			"titre":             "Madame Bovary",
			"auteur":            authorIDs["Gustave Flaubert"],
			"annee_publication": 1857,
			"genre":             []string{"Roman", "Réalisme", "Littérature classique"},
			"isbn":              "978-2-253-00115-4",
			"editeur":           "Le Livre de Poche",
			"langue":            "français",
			"resume":            "Emma Bovary, femme d'un médecin de campagne, s'ennuie dans sa vie bourgeoise et cherche l'évasion dans des rêves romantiques qui la mèneront à sa perte.",
		},
		{
			"titre":             "Le Rouge et le Noir",
			"auteur":            authorIDs["Stendhal"],
			"annee_publication": 1830,
			"genre":             []string{"Roman", "Psychologique", "Littérature classique"},
			"isbn":              "978-2-253-00616-6",
			"editeur":           "Le Livre de Poche",
			"langue":            "français",
			"resume":            "Julien Sorel, jeune homme ambitieux de la Restauration, tente de s'élever socialement par tous les moyens dans une société rigide et hypocrite.",
		},
	}

	docs := make([]interface{}, len(books))
	for i, b := range books {
		b["disponible"] = true
		b["date_ajout"] = time.Now()
		b["stock"] = bookmodel.DefaultStock
		docs[i] = b
	}

	_, err := collection.InsertMany(ctx, docs)
	return err
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
