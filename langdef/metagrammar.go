package langdef

// MetaGrammar is the description of grammar description language written in itself.
// It defines the same rules as Bootstrap in the same order.
const MetaGrammar = `/*
 * grammar description language
 */

Grammar ::= Statement*;
Statement ::= TokenDirective RuleEqualsDefinition+ | 'Token' RuleEqualsDefinition+ | RuleEqualsDefinition+;
TokenDirective ::= 'Token' Name | 'Token' CodeBlock;
RuleEqualsDefinition ::= Name ':=' QuotedString ';' | Name [ThrowDeclaration] '::=' Expression ';';
ThrowDeclaration ::= 'Throw' '[' Name+ ']';

Expression ::= Or ('|' Or)*;
Or ::= AtomExpression+;
AtomExpression ::= Atom RepetitionTrailer*;
Atom ::= QuotedString | Name | '(' Expression ')' | '[' Expression ']';
RepetitionTrailer ::= '*' | '+' | '{' Number [Number] '}';

/* commas are separators, so {1, 3} is the same as {1 3} */
Token
Name := r'[\p{L}_][\p{L}\p{Nd}_.]*';
QuotedString := r'[A-Za-z]?(?:\'(?:[^\'\\]|\\.)*\'|"(?:[^"\\]|\\.)*")';
CodeBlock := r'\{\{.*\}\}';
Number := r'[0-9]+';
`
