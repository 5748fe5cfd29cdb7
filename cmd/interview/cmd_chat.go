package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/fadilmartias/interview-coach/internal/config"
	"github.com/fadilmartias/interview-coach/internal/repository"
	"github.com/fadilmartias/interview-coach/internal/service"
	"github.com/fadilmartias/interview-coach/internal/usecase"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run an interactive interview session in the terminal",
	RunE:  runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	interviewConfig := config.LoadInterviewConfig()

	roleRepo, err := repository.NewRoleRepository()
	if err != nil {
		return err
	}
	completion := service.NewCompletionServiceFromEnv(ctx, interviewConfig.RequestTimeout)
	agent := usecase.NewInterviewUsecase(*interviewConfig, roleRepo, completion, nil)

	divider := strings.Repeat("=", 60)
	fmt.Println("\n" + divider)
	fmt.Println("  INTERVIEW PRACTICE PARTNER")
	fmt.Println(divider)
	fmt.Println("\nWelcome! I'm your AI interview practice partner.")
	fmt.Println("Type 'help' to see available commands.")
	fmt.Println("\nAvailable roles:")
	for _, role := range agent.ListAvailableRoles() {
		fmt.Printf("  - %s\n", role)
	}
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 64*1024)

	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		select {
		case <-ctx.Done():
			fmt.Println("\n\nGoodbye! Thanks for practicing with me.")
			return nil
		default:
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		reply := agent.HandleUserInput(ctx, input)
		fmt.Printf("\nInterviewer: %s\n\n", reply)

		if strings.Contains(reply, "Thank you for completing") {
			fmt.Print("Start another interview? (y/n): ")
			if !scanner.Scan() {
				break
			}
			if strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
				break
			}
			fmt.Println()
		}
	}

	return scanner.Err()
}
