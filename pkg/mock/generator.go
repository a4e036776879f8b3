package mock

//go:generate minimock -g -i github.com/instill-ai/knowledge-backend/pkg/repository.Repository -o ./ -s "_mock.gen.go"
//go:generate minimock -g -i github.com/instill-ai/knowledge-backend/pkg/repository/object.Storage -o ./ -s "_mock.gen.go"
//go:generate minimock -g -i github.com/instill-ai/knowledge-backend/pkg/ai.Embedder -o ./ -s "_mock.gen.go"
//go:generate minimock -g -i github.com/instill-ai/knowledge-backend/pkg/worker.Locker -o ./ -s "_mock.gen.go"
//go:generate minimock -g -i github.com/instill-ai/knowledge-backend/pkg/handler.DocumentProcessor -o ./ -s "_mock.gen.go"
